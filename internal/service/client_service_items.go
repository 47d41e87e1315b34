package service

import (
	"context"

	"github.com/MKhiriev/go-item-service/internal/adapter"
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/models"
)

type itemClientService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewItemClientService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ItemClientService {
	return &itemClientService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// Greet implements [ItemClientService].
func (s *itemClientService) Greet(ctx context.Context) (models.Greeting, error) {
	greeting, err := s.serverAdapter.Greet(ctx)
	if err != nil {
		s.logger.Err(err).Msg("greet request failed")
		return models.Greeting{}, err
	}

	return greeting, nil
}

// CreateItem implements [ItemClientService].
func (s *itemClientService) CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error) {
	resp, err := s.serverAdapter.CreateItem(ctx, item)
	if err != nil {
		s.logger.Err(err).Str("name", item.ItemName()).Msg("create item request failed")
		return models.CreateItemResponse{}, err
	}

	s.logger.Debug().Str("message", resp.Message).Msg("item created")
	return resp, nil
}

// GetItemDetails implements [ItemClientService].
func (s *itemClientService) GetItemDetails(ctx context.Context, itemID int64, q string) (models.ItemDetails, error) {
	details, err := s.serverAdapter.GetItemByID(ctx, itemID, q)
	if err != nil {
		s.logger.Err(err).Int64("item_id", itemID).Msg("get item details request failed")
		return models.ItemDetails{}, err
	}

	return details, nil
}
