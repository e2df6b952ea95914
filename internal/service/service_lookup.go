// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"

	"github.com/ravasquez/dni-gateway/internal/config"
	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/upstream"
	"github.com/ravasquez/dni-gateway/internal/validators"
	"github.com/ravasquez/dni-gateway/models"
)

// lookupService is the concrete implementation of LookupService.
// It validates keys up front and delegates network work to the upstream
// client, directly for single lookups and through the bounded dispatcher
// for batches.
type lookupService struct {
	// client performs the outbound provider calls.
	client upstream.Client

	// validator holds the lexical rules a key must pass before any
	// network activity happens.
	validator validators.Validator

	// batch carries the batch cap and the concurrency budget.
	batch config.Batch

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewLookupService constructs a LookupService wired to the given upstream
// client and populated with the batch limits from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewLookupService(client upstream.Client, cfg config.Batch, logger *logger.Logger) LookupService {
	return &lookupService{
		client:    client,
		validator: validators.NewDNIValidator(),
		batch:     cfg,
		logger:    logger,
	}
}

// Lookup implements LookupService. The single-lookup path deliberately
// has no budget gate: only batch fan-out is bounded.
func (s *lookupService) Lookup(ctx context.Context, dni string) (json.RawMessage, error) {
	if err := s.validator.Validate(dni); err != nil {
		return nil, err
	}

	data, err := s.client.Lookup(ctx, dni)
	if err != nil {
		s.logger.Err(err).Str("dni", dni).Msg("single lookup failed")
		return nil, err
	}

	return data, nil
}

// LookupBatch implements LookupService. Validation is fail-fast: the cap
// and every key are checked before the first upstream call, and any
// offender rejects the whole batch with the full offender list.
func (s *lookupService) LookupBatch(ctx context.Context, dnis []string) ([]models.LookupResult, error) {
	if len(dnis) > s.batch.MaxKeys {
		return nil, &BatchTooLargeError{Max: s.batch.MaxKeys, Got: len(dnis)}
	}

	var invalid []string
	for _, dni := range dnis {
		if err := s.validator.Validate(dni); err != nil {
			invalid = append(invalid, dni)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidDNIsError{DNIs: invalid}
	}

	results := newDispatcher(s.client, s.batch.Concurrency).Dispatch(ctx, dnis)

	failed := 0
	for _, res := range results {
		if res.Status == models.StatusError {
			failed++
		}
	}
	s.logger.Info().
		Int("total", len(results)).
		Int("failed", failed).
		Msg("batch lookup completed")

	return results, nil
}
