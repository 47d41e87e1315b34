package service

import (
	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/MKhiriev/go-item-service/internal/logger"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		ItemService:    NewItemService(logger),
		AppInfoService: NewAppInfoService(cfg, logger),
	}
}
