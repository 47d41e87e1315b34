package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formWithValues(name, description, price, itemID string) formItemModel {
	form := newFormItemModel()
	form.inputs[fieldName].SetValue(name)
	form.inputs[fieldDescription].SetValue(description)
	form.inputs[fieldPrice].SetValue(price)
	form.inputs[fieldItemID].SetValue(itemID)
	return form
}

// ─────────────────────────────────────────────
// toItem
// ─────────────────────────────────────────────

func TestToItem_AllFieldsSet(t *testing.T) {
	item := formWithValues("Teapot", "ceramic", "9.99", "").toItem()

	require.NotNil(t, item.Name)
	assert.Equal(t, "Teapot", *item.Name)
	require.NotNil(t, item.Description)
	assert.Equal(t, "ceramic", *item.Description)
	require.NotNil(t, item.Price)
	assert.Equal(t, 9.99, *item.Price)
}

func TestToItem_EmptyDescriptionStaysAbsent(t *testing.T) {
	item := formWithValues("Teapot", "", "1", "").toItem()

	assert.Nil(t, item.Description)
}

func TestToItem_NegativePriceClampedToZero(t *testing.T) {
	item := formWithValues("Teapot", "", "-5", "").toItem()

	require.NotNil(t, item.Price)
	assert.Equal(t, float64(0), *item.Price)
}

func TestToItem_UnparseablePriceOmitted(t *testing.T) {
	item := formWithValues("Teapot", "", "cheap", "").toItem()

	assert.Nil(t, item.Price)
}

func TestToItem_PriceWhitespaceTrimmed(t *testing.T) {
	item := formWithValues("Teapot", "", "  2.5  ", "").toItem()

	require.NotNil(t, item.Price)
	assert.Equal(t, 2.5, *item.Price)
}

// ─────────────────────────────────────────────
// lookupID
// ─────────────────────────────────────────────

func TestLookupID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int64
		wantOK bool
	}{
		{name: "plain id", input: "4", wantID: 4, wantOK: true},
		{name: "below one clamped", input: "0", wantID: 1, wantOK: true},
		{name: "negative clamped", input: "-3", wantID: 1, wantOK: true},
		{name: "whitespace trimmed", input: "  7 ", wantID: 7, wantOK: true},
		{name: "fractional rejected", input: "1.5", wantOK: false},
		{name: "words rejected", input: "four", wantOK: false},
		{name: "empty rejected", input: "", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			id, ok := formWithValues("", "", "", tc.input).lookupID()

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantID, id)
			}
		})
	}
}

// ─────────────────────────────────────────────
// Focus cycling
// ─────────────────────────────────────────────

func TestFocusNext_WrapsAround(t *testing.T) {
	form := newFormItemModel()
	assert.Equal(t, fieldName, form.focus)

	for i := 0; i < fieldCount; i++ {
		form = form.focusNext()
	}

	assert.Equal(t, fieldName, form.focus)
	assert.True(t, form.inputs[fieldName].Focused())
}

func TestFocusPrev_WrapsToLastField(t *testing.T) {
	form := newFormItemModel().focusPrev()

	assert.Equal(t, fieldItemID, form.focus)
	assert.True(t, form.inputs[fieldItemID].Focused())
	assert.False(t, form.inputs[fieldName].Focused())
}
