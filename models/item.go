package models

// Item is the single data shape exchanged between the client and the
// server. Required fields are pointers so that "field absent" and
// "zero value sent" can be told apart during validation: a price of 0
// is legal, a missing price is not.
type Item struct {
	// Name is the human-readable item name.
	// Required.
	Name *string `json:"name" validate:"required"`

	// Description is an optional free-form item description.
	// When absent it stays absent in the echoed response.
	Description *string `json:"description,omitempty"`

	// Price is the item price. Any numeric value is accepted by the
	// server; the presentation layer clamps user input to non-negative.
	// Required.
	Price *float64 `json:"price" validate:"required"`
}

// ItemName returns the item name or an empty string if Name is unset.
func (i Item) ItemName() string {
	if i.Name == nil {
		return ""
	}
	return *i.Name
}
