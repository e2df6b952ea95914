// Package upstream implements the outbound client for the DNI lookup
// provider. It issues exactly one HTTP call per lookup, attaches the
// configured bearer credential, and classifies every failure into one of
// three shapes: missing credential ([ErrTokenNotConfigured]), provider
// error ([*HTTPError]), or transport error (a wrapped resty error).
package upstream

import (
	"context"
	"encoding/json"
)

// Client performs single DNI lookups against the upstream provider.
//
// Implementations must be safe for concurrent use: the batch dispatcher
// calls Lookup from multiple goroutines at once.
type Client interface {
	// Lookup resolves one DNI and returns the provider's JSON document
	// verbatim. No retries, no caching; the call is bounded by the
	// client's configured timeout.
	Lookup(ctx context.Context, dni string) (json.RawMessage, error)
}
