package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-service/internal/service"
	"github.com/MKhiriev/go-item-service/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Fixed user-facing failure messages. Every transport failure or
// non-success status collapses to one of these two strings.
const (
	failedCreateMessage = "Failed to create the item."
	failedFetchMessage  = "Failed to fetch item details."
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	greeting string
	form     formItemModel

	status     string
	errMessage string
	err        error
}

func newAppModel(ctx context.Context, services *service.ClientServices, greeting string) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		greeting: greeting,
		form:     newFormItemModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case itemCreatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMessage = failedCreateMessage
			return m, nil
		}
		m.errMessage = ""
		m.status = msg.resp.Message
		return m, nil
	case detailsLoadedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMessage = failedFetchMessage
			return m, nil
		}
		m.errMessage = ""
		m.status = fmt.Sprintf("Item ID: %d  Square: %d", msg.details.ItemID, msg.details.Square)
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.status = ""
		m.errMessage = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.copy):
		if m.status == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.status)
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		if m.form.focus == fieldItemID {
			id, ok := m.form.lookupID()
			if !ok {
				m.errMessage = failedFetchMessage
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdGetItemDetails(id)
		}
		m.form.submitting = true
		return m, m.cmdCreateItem(m.form.toItem())
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	title := m.greeting
	if title == "" {
		title = "Item service"
	}

	body := titleStyle.Render(title) + "\n\n"
	body += m.form.View()
	body += "\n"

	if m.form.submitting {
		body += statusStyle.Render("Sending...") + "\n"
	}
	if m.status != "" {
		body += statusStyle.Render(m.status) + "\n"
	}
	if m.errMessage != "" {
		body += errorStyle.Render(m.errMessage) + "\n"
	}

	body += "\n" + helpStyle.Render("tab next field  enter create item / get details  ctrl+y copy result  ctrl+c quit")
	return appStyle.Render(body)
}

func (m appModel) cmdCreateItem(item models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemClientService
	return func() tea.Msg {
		resp, err := svc.CreateItem(ctx, item)
		return itemCreatedMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdGetItemDetails(itemID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemClientService
	return func() tea.Msg {
		details, err := svc.GetItemDetails(ctx, itemID, "")
		return detailsLoadedMsg{details: details, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
