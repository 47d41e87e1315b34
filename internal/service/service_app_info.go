package service

import (
	"context"

	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/MKhiriev/go-item-service/internal/logger"
)

// GreetingMessage is the fixed payload of the root route.
const GreetingMessage = "Welcome to the item service!"

const unknownVersion = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetGreeting(ctx context.Context) string {
	return GreetingMessage
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
