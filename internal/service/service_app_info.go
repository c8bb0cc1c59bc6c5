package service

import (
	"context"

	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/logger"
)

type appInfoService struct {
	appVersion  string
	serviceName string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.ServiceName == "" {
		return nil, ErrServiceNameIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		serviceName: cfg.ServiceName,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetServiceName(ctx context.Context) string {
	return s.serviceName
}
