package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenNotConfigured is returned when the upstream bearer token is
	// absent from the configuration. It is checked once per call, before
	// any network activity, and maps to a deployment defect (HTTP 500)
	// rather than a client error.
	ErrTokenNotConfigured = errors.New("upstream token is not configured")
)

// HTTPError is returned when the provider answered with a non-2xx status.
// Status and Body carry the provider's response so single lookups can
// pass them through to the caller unchanged.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Body)
}
