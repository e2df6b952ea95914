// Package service implements the lookup business logic: single-key
// lookups and the bounded-concurrency batch dispatcher that is the core
// of the gateway.
package service

import (
	"context"
	"encoding/json"

	"github.com/ravasquez/dni-gateway/models"
)

// LookupService resolves DNI lookup keys against the upstream provider.
type LookupService interface {
	// Lookup validates one key and performs a single upstream call.
	// Validation and upstream errors propagate to the caller unchanged
	// so the transport layer can map them to HTTP statuses.
	Lookup(ctx context.Context, dni string) (json.RawMessage, error)

	// LookupBatch resolves a list of keys in one call. The whole batch
	// is rejected up front when it exceeds the configured cap
	// (*BatchTooLargeError) or contains malformed keys
	// (*InvalidDNIsError, enumerating every offender). Otherwise it
	// fans out to the upstream with a bounded number of calls in
	// flight and always returns one result per input key, in input
	// order; per-item failures are captured inside the results and
	// never fail the batch itself.
	LookupBatch(ctx context.Context, dnis []string) ([]models.LookupResult, error)
}
