package http

import (
	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins is the CORS allow-list; "*" allows any origin.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
