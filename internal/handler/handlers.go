package handler

import (
	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/handler/http"
	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/service"
)

// Handlers groups the transport handlers built for the configured listeners.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
