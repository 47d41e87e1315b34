package http

import (
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/metrics"
	"github.com/MKhiriev/go-item-service/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
