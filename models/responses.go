// SPDX-License-Identifier: Apache-2.0

package models

// HealthResponse is the body of the unauthenticated GET / endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"mensaje"`
}

// ErrorResponse is the JSON body written for every error status the
// gateway produces itself (validation, auth, configuration, transport).
type ErrorResponse struct {
	Detail string `json:"detalle"`
}
