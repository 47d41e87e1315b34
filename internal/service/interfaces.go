package service

import (
	"context"

	"github.com/MKhiriev/go-item-service/models"
)

// ItemService implements the two item operations of the API. Neither
// operation touches a store: creation validates and echoes, lookup
// derives the square of the given id.
type ItemService interface {
	// CreateItem validates item and returns the confirmation response
	// embedding the item name together with an echo of the validated
	// payload. Returns [ErrInvalidDataProvided] (wrapped) when required
	// fields are missing.
	CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error)

	// GetItemDetails returns itemID and its square. Any integer
	// succeeds; there is no existence check.
	GetItemDetails(ctx context.Context, itemID int64) models.ItemDetails
}

// AppInfoService exposes static application information.
type AppInfoService interface {
	// GetGreeting returns the fixed greeting served by the root route.
	GetGreeting(ctx context.Context) string

	// GetAppVersion returns the application version string.
	GetAppVersion(ctx context.Context) string
}
