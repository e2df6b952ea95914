package http

import (
	"net/http"

	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/utils"
	"github.com/ravasquez/dni-gateway/models"
)

const apiKeyHeader = "X-Api-Key"

// auth is an HTTP middleware that enforces the optional shared-secret
// gate.
//
// When no API key is configured the gate is disabled entirely and every
// request passes through. Otherwise the incoming request must carry an
// X-Api-Key header equal to the configured secret; a missing or wrong
// value is rejected with HTTP 401 Unauthorized and a JSON error body.
//
// All rejection events are logged using the context-scoped logger
// obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get(apiKeyHeader) != h.apiKey {
			log := logger.FromRequest(r)
			log.Err(ErrInvalidAPIKey).Send()
			utils.WriteJSON(w, models.ErrorResponse{Detail: ErrInvalidAPIKey.Error()}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
