package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/models"
	"github.com/go-playground/validator/v10"
)

type itemService struct {
	validate *validator.Validate

	logger *logger.Logger
}

// NewItemService constructs the [ItemService] implementation. Struct
// validation is delegated to go-playground/validator with JSON tag
// names registered so that validation errors reference wire field
// names ("price"), not Go field names ("Price").
func NewItemService(logger *logger.Logger) ItemService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &itemService{
		validate: validate,
		logger:   logger,
	}
}

// CreateItem implements [ItemService]. The item is validated and
// described in the response but never stored.
func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error) {
	if err := s.validate.Struct(item); err != nil {
		return models.CreateItemResponse{}, fmt.Errorf("%w: %s", ErrInvalidDataProvided, describeValidationError(err))
	}

	s.logger.Debug().Str("name", item.ItemName()).Msg("item validated")

	return models.CreateItemResponse{
		Message: fmt.Sprintf("Item %s created successfully!", item.ItemName()),
		Item:    item,
	}, nil
}

// GetItemDetails implements [ItemService]. Lookup does not retrieve
// anything: the id is echoed back along with its square.
func (s *itemService) GetItemDetails(ctx context.Context, itemID int64) models.ItemDetails {
	return models.ItemDetails{
		ItemID: itemID,
		Square: itemID * itemID,
	}
}

// describeValidationError flattens validator.ValidationErrors into a
// short "field: rule" list for log and response messages.
func describeValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		parts = append(parts, fieldError.Field()+": "+fieldError.Tag())
	}

	return strings.Join(parts, ", ")
}
