package service

import (
	"github.com/MKhiriev/go-item-service/internal/adapter"
	"github.com/MKhiriev/go-item-service/internal/logger"
)

type ClientServices struct {
	ItemClientService ItemClientService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ItemClientService: NewItemClientService(serverAdapter, logger),
	}
}
