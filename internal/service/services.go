package service

import (
	"fmt"

	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/store"
)

type Services struct {
	ResourceService ResourceService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	resourceService := NewResourceValidationService().
		Wrap(NewResourceService(storages.ResourceRepository, logger))

	return &Services{
		ResourceService: resourceService,
		AppInfoService:  appInfoService,
	}, nil
}
