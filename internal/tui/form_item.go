package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-item-service/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// Form field indexes. The first three belong to the create action, the
// last one to the lookup action.
const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldItemID

	fieldCount
)

type formItemModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormItemModel() formItemModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldPrice].Placeholder = "0.00"
	inputs[fieldItemID].Placeholder = "1"
	inputs[fieldName].Focus()

	return formItemModel{inputs: inputs}
}

// toItem packages the create fields into the request payload. The price
// input is clamped to non-negative; an unparseable price is sent as an
// absent field so the server's validation decides the outcome. An empty
// description stays absent.
func (m formItemModel) toItem() models.Item {
	name := m.inputs[fieldName].Value()
	item := models.Item{Name: &name}

	if desc := m.inputs[fieldDescription].Value(); desc != "" {
		item.Description = &desc
	}

	if price, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldPrice].Value()), 64); err == nil {
		if price < 0 {
			price = 0
		}
		item.Price = &price
	}

	return item
}

// lookupID parses the item id field. Values below one are clamped to
// one; a non-integer value is reported as not ok.
func (m formItemModel) lookupID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(m.inputs[fieldItemID].Value()), 10, 64)
	if err != nil {
		return 0, false
	}
	if id < 1 {
		id = 1
	}
	return id, true
}

func (m formItemModel) focusNext() formItemModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formItemModel) focusPrev() formItemModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formItemModel) View() string {
	out := "Item name:        [" + m.inputs[fieldName].View() + "]\n"
	out += "Item description: [" + m.inputs[fieldDescription].View() + "]\n"
	out += "Item price:       [" + m.inputs[fieldPrice].View() + "]\n"
	out += "\n"
	out += "Item ID:          [" + m.inputs[fieldItemID].View() + "]\n"
	return out
}
