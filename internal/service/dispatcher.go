// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/ravasquez/dni-gateway/internal/upstream"
	"github.com/ravasquez/dni-gateway/models"
)

// dispatcher fans one batch of lookup keys out to the upstream client
// while keeping at most budget calls in flight. Each key's outcome is
// recorded at its input index; no failure of one key ever aborts the
// others, and Dispatch returns only after every key has an outcome.
type dispatcher struct {
	client upstream.Client
	budget int64
}

func newDispatcher(client upstream.Client, budget int) *dispatcher {
	if budget < 1 {
		budget = 1
	}
	return &dispatcher{client: client, budget: int64(budget)}
}

// Dispatch resolves every key in dnis and returns one result per key, in
// input order, regardless of completion order. An empty input yields an
// empty result with zero upstream calls.
//
// A fresh semaphore is created per call, so the budget is never shared
// across batch invocations.
func (d *dispatcher) Dispatch(ctx context.Context, dnis []string) []models.LookupResult {
	results := make([]models.LookupResult, len(dnis))
	if len(dnis) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(d.budget)

	var wg sync.WaitGroup
	for i, dni := range dnis {
		i, dni := i, dni
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.lookupOne(ctx, sem, dni)
		}()
	}
	wg.Wait()

	return results
}

// lookupOne waits for a budget slot, performs the upstream call, and
// releases the slot via defer so an error or panic inside the call still
// frees it. Cancellation while waiting is recorded as this key's error
// outcome; the sibling keys are unaffected.
func (d *dispatcher) lookupOne(ctx context.Context, sem *semaphore.Weighted, dni string) models.LookupResult {
	if err := sem.Acquire(ctx, 1); err != nil {
		return errorResult(dni, fmt.Errorf("lookup cancelled: %w", err))
	}
	defer sem.Release(1)

	return d.fetch(ctx, dni)
}

// fetch performs the single upstream call for one key. A panic inside
// the client is converted into an error outcome for this key only.
func (d *dispatcher) fetch(ctx context.Context, dni string) (res models.LookupResult) {
	defer func() {
		if r := recover(); r != nil {
			res = errorResult(dni, fmt.Errorf("lookup panicked: %v", r))
		}
	}()

	data, err := d.client.Lookup(ctx, dni)
	if err != nil {
		return errorResult(dni, err)
	}

	return models.LookupResult{DNI: dni, Status: models.StatusOK, Data: data}
}

func errorResult(dni string, err error) models.LookupResult {
	return models.LookupResult{DNI: dni, Status: models.StatusError, Detail: err.Error()}
}
