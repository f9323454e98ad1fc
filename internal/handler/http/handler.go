package http

import (
	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// corsOrigins lists the browser origins allowed to call the API.
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Handler{
		services:    services,
		corsOrigins: origins,
		logger:      logger,
	}
}
