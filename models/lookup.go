// SPDX-License-Identifier: Apache-2.0

// Package models defines the wire types exposed by the DNI gateway API.
//
// Field names follow the public contract of the original service
// (Spanish vocabulary: dni, detalle, total, resultados, mensaje), so
// existing consumers keep working unchanged.
package models

import "encoding/json"

// Lookup result statuses. Every batch item carries exactly one of them.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// LookupResult is the outcome of one DNI lookup inside a batch.
//
// Exactly one of Data and Detail is populated: Data holds the upstream
// provider's JSON document verbatim when Status is "ok", Detail holds a
// human-readable failure reason when Status is "error".
type LookupResult struct {
	DNI    string          `json:"dni"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Detail string          `json:"detalle,omitempty"`
}

// BatchResponse is the body of a successful POST /dni/lote call.
// Total always equals the number of submitted keys and Results preserves
// their order, one entry per key.
type BatchResponse struct {
	Total   int            `json:"total"`
	Results []LookupResult `json:"resultados"`
}
