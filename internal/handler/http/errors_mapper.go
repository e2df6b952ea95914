package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/ravasquez/dni-gateway/internal/service"
	"github.com/ravasquez/dni-gateway/internal/upstream"
	"github.com/ravasquez/dni-gateway/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidDNI:       http.StatusBadRequest,
	upstream.ErrTokenNotConfigured: http.StatusInternalServerError,
}

// statusFromError resolves the HTTP status and the response detail for a
// service error:
//   - validation errors (malformed key, offender list, oversized batch)
//     map to 400;
//   - a missing upstream credential is a deployment defect, 500;
//   - a provider error keeps the provider's own status and body;
//   - a transport failure maps to 503;
//   - anything unrecognized falls through to 500.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, err.Error()
		}
	}

	var invalidKeys *service.InvalidDNIsError
	if errors.As(err, &invalidKeys) {
		return http.StatusBadRequest, err.Error()
	}
	var tooLarge *service.BatchTooLargeError
	if errors.As(err, &tooLarge) {
		return http.StatusBadRequest, err.Error()
	}

	var httpErr *upstream.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, "Error de seeker.red: " + httpErr.Body
	}

	// resty wraps every network-level failure in a *url.Error
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return http.StatusServiceUnavailable, "Error de conexión: " + err.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
