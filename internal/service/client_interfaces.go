package service

import (
	"context"

	"github.com/MKhiriev/go-item-service/models"
)

// ItemClientService is the client-side counterpart of the server API.
// It wraps the transport adapter with logging; it performs no caching
// and keeps no state between calls.
type ItemClientService interface {
	// Greet fetches the fixed greeting from the root route.
	Greet(ctx context.Context) (models.Greeting, error)

	// CreateItem submits item for creation and returns the server's
	// confirmation response.
	CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error)

	// GetItemDetails fetches the id/square pair for itemID. q is an
	// optional query string forwarded to the server, which accepts it
	// but does not use it.
	GetItemDetails(ctx context.Context, itemID int64, q string) (models.ItemDetails, error)
}
