package service

import (
	"github.com/ravasquez/dni-gateway/internal/config"
	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/upstream"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	LookupService LookupService
}

// NewServices wires all services to the given upstream client and config.
func NewServices(client upstream.Client, cfg config.Batch, logger *logger.Logger) *Services {
	return &Services{
		LookupService: NewLookupService(client, cfg, logger),
	}
}
