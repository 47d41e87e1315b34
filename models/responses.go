package models

// Greeting is the payload of the root route. The message never varies.
type Greeting struct {
	// Message is the fixed greeting returned by GET /.
	Message string `json:"message"`
}

// CreateItemResponse confirms a successful item creation request.
// Nothing is stored server-side; the response is the only artifact.
type CreateItemResponse struct {
	// Message embeds the item name, e.g. `Item Teapot created successfully!`.
	Message string `json:"message"`

	// Item echoes the validated request payload back to the caller.
	Item Item `json:"item"`
}

// ItemDetails is the payload of the item lookup route. There is no
// backing store: the id is accepted as input and echoed back together
// with its square.
type ItemDetails struct {
	// ItemID is the id from the request path, echoed verbatim.
	ItemID int64 `json:"item_id"`

	// Square is ItemID multiplied by itself.
	Square int64 `json:"square"`
}
