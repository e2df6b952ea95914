// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/utils"
	"github.com/ravasquez/dni-gateway/models"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Message: "Consultor DNI en línea",
	}, http.StatusOK)
}

// lookup handles GET /dni/{dni}: one validated key, one upstream call,
// the provider's JSON document passed through verbatim on success.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dni := chi.URLParam(r, "dni")

	data, err := h.services.LookupService.Lookup(ctx, dni)
	if err != nil {
		status, detail := statusFromError(err)
		log.Err(err).Str("dni", dni).Int("status", status).Msg("single lookup failed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}

// lookupBatch handles POST /dni/lote: a JSON array of keys resolved via
// the bounded dispatcher. Once past the cap and validation checks the
// call always answers 200 with one result per key, failures included.
func (h *Handler) lookupBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dnis []string
	if err := json.NewDecoder(r.Body).Decode(&dnis); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	results, err := h.services.LookupService.LookupBatch(ctx, dnis)
	if err != nil {
		status, detail := statusFromError(err)
		log.Err(err).Int("keys", len(dnis)).Int("status", status).Msg("batch lookup rejected")
		utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
		return
	}

	utils.WriteJSON(w, models.BatchResponse{Total: len(results), Results: results}, http.StatusOK)
}
