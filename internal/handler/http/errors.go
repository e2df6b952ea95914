// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	// ErrInvalidAPIKey is the rejection reason used by the auth
	// middleware when the gate is enabled and the X-Api-Key header is
	// missing or does not match the configured secret.
	ErrInvalidAPIKey = errors.New("API key inválida o ausente")
)
