// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravasquez/dni-gateway/internal/config"
	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/service"
	"github.com/ravasquez/dni-gateway/internal/upstream"
	"github.com/ravasquez/dni-gateway/internal/validators"
	"github.com/ravasquez/dni-gateway/models"
)

// ─────────────────────────────────────────────
// Mock LookupService
// ─────────────────────────────────────────────

// mockLookupService implements service.LookupService for unit tests.
// Each method field can be overridden per test case.
type mockLookupService struct {
	lookupFn      func(ctx context.Context, dni string) (json.RawMessage, error)
	lookupBatchFn func(ctx context.Context, dnis []string) ([]models.LookupResult, error)
}

func (m *mockLookupService) Lookup(ctx context.Context, dni string) (json.RawMessage, error) {
	return m.lookupFn(ctx, dni)
}

func (m *mockLookupService) LookupBatch(ctx context.Context, dnis []string) ([]models.LookupResult, error) {
	return m.lookupBatchFn(ctx, dnis)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full chi router around the given mock so
// requests exercise routing and middleware exactly as in production.
func newTestRouter(t *testing.T, svc service.LookupService, apiKey string) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{LookupService: svc}, config.Auth{APIKey: apiKey}, logger.Nop())
	return h.Init()
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeDetail extracts the "detalle" field of a JSON error body.
func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// ─────────────────────────────────────────────
// health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &mockLookupService{}, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Message)
}

// ─────────────────────────────────────────────
// lookup: GET /dni/{dni}
// ─────────────────────────────────────────────

// TestLookup_Success verifies that the upstream document is passed
// through verbatim with 200.
func TestLookup_Success(t *testing.T) {
	const payload = `{"nombres":"JUAN","apellidoPaterno":"PEREZ"}`

	svc := &mockLookupService{
		lookupFn: func(_ context.Context, dni string) (json.RawMessage, error) {
			assert.Equal(t, "12345678", dni)
			return json.RawMessage(payload), nil
		},
	}
	router := newTestRouter(t, svc, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/dni/12345678", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, payload, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestLookup_InvalidKey(t *testing.T) {
	svc := &mockLookupService{
		lookupFn: func(_ context.Context, _ string) (json.RawMessage, error) {
			return nil, validators.ErrInvalidDNI
		},
	}
	router := newTestRouter(t, svc, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/dni/123", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "8 digits")
}

// TestLookup_MissingToken verifies the deployment-defect mapping: a
// missing upstream credential is a 500, not a client error.
func TestLookup_MissingToken(t *testing.T) {
	svc := &mockLookupService{
		lookupFn: func(_ context.Context, _ string) (json.RawMessage, error) {
			return nil, upstream.ErrTokenNotConfigured
		},
	}
	router := newTestRouter(t, svc, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/dni/12345678", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "token is not configured")
}

// TestLookup_UpstreamStatusPassthrough verifies that a provider error
// keeps the provider's own status code.
func TestLookup_UpstreamStatusPassthrough(t *testing.T) {
	svc := &mockLookupService{
		lookupFn: func(_ context.Context, _ string) (json.RawMessage, error) {
			return nil, &upstream.HTTPError{Status: http.StatusNotFound, Body: "dni no encontrado"}
		},
	}
	router := newTestRouter(t, svc, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/dni/12345678", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "Error de seeker.red")
	assert.Contains(t, decodeDetail(t, rec), "dni no encontrado")
}

func TestLookup_TransportError(t *testing.T) {
	transportErr := &url.Error{Op: "Post", URL: "https://seeker.red", Err: errors.New("connection refused")}
	svc := &mockLookupService{
		lookupFn: func(_ context.Context, _ string) (json.RawMessage, error) {
			return nil, transportErr
		},
	}
	router := newTestRouter(t, svc, "")

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/dni/12345678", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "Error de conexión")
}

// ─────────────────────────────────────────────
// lookupBatch: POST /dni/lote
// ─────────────────────────────────────────────

func TestLookupBatch_Success(t *testing.T) {
	results := []models.LookupResult{
		{DNI: "12345678", Status: models.StatusOK, Data: json.RawMessage(`{"nombres":"JUAN"}`)},
		{DNI: "87654321", Status: models.StatusError, Detail: "upstream responded 404: no encontrado"},
	}
	svc := &mockLookupService{
		lookupBatchFn: func(_ context.Context, dnis []string) ([]models.LookupResult, error) {
			assert.Equal(t, []string{"12345678", "87654321"}, dnis)
			return results, nil
		},
	}
	router := newTestRouter(t, svc, "")

	req := httptest.NewRequest(http.MethodPost, "/dni/lote", strings.NewReader(`["12345678","87654321"]`))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "12345678", body.Results[0].DNI)
	assert.Equal(t, models.StatusOK, body.Results[0].Status)
	assert.Equal(t, models.StatusError, body.Results[1].Status)
	assert.Empty(t, body.Results[1].Data)
}

func TestLookupBatch_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &mockLookupService{}, "")

	req := httptest.NewRequest(http.MethodPost, "/dni/lote", strings.NewReader(`not json`))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupBatch_TooLarge(t *testing.T) {
	svc := &mockLookupService{
		lookupBatchFn: func(_ context.Context, _ []string) ([]models.LookupResult, error) {
			return nil, &service.BatchTooLargeError{Max: 20, Got: 21}
		},
	}
	router := newTestRouter(t, svc, "")

	req := httptest.NewRequest(http.MethodPost, "/dni/lote", strings.NewReader(`["12345678"]`))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "maximum of 20")
}

// TestLookupBatch_InvalidKeysListed verifies that every offending key
// appears in the rejection detail.
func TestLookupBatch_InvalidKeysListed(t *testing.T) {
	svc := &mockLookupService{
		lookupBatchFn: func(_ context.Context, _ []string) ([]models.LookupResult, error) {
			return nil, &service.InvalidDNIsError{DNIs: []string{"123", "99999999x"}}
		},
	}
	router := newTestRouter(t, svc, "")

	req := httptest.NewRequest(http.MethodPost, "/dni/lote", strings.NewReader(`["123","99999999x"]`))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeDetail(t, rec)
	assert.Contains(t, detail, "123")
	assert.Contains(t, detail, "99999999x")
}
