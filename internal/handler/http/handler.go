package http

import (
	"github.com/ravasquez/dni-gateway/internal/config"
	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	// apiKey is the inbound shared secret; empty disables the gate.
	apiKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_enabled", cfg.APIKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   cfg.APIKey,
		logger:   logger,
	}
}
