// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for the DNI gateway.
// It is populated by merging values from environment variables,
// command-line flags, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the endpoint, credential, and timeout for the
	// lookup provider.
	Upstream Upstream `envPrefix:"SEEKER_"`

	// Auth holds the optional inbound shared secret. When it is empty
	// the API-key gate is disabled entirely.
	Auth Auth

	// Batch holds the batch lookup limits: the per-request key cap and
	// the concurrency budget for simultaneous upstream calls.
	Batch Batch `envPrefix:"BATCH_"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upstream holds configuration for the external lookup provider.
type Upstream struct {
	// Token is the bearer credential presented to the provider on every
	// call. Its absence is NOT a startup failure: single lookups fail
	// per-request with a configuration error instead, matching the
	// deployment model where the token may arrive after boot.
	// Env: SEEKER_TOKEN
	Token string `env:"TOKEN"`

	// URL is the full provider endpoint the gateway posts lookups to.
	// Env: SEEKER_URL
	URL string `env:"URL"`

	// Timeout bounds every outbound lookup call; exceeding it surfaces
	// as a transport error, never a hang.
	// Env: SEEKER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Auth holds the optional inbound authentication settings.
type Auth struct {
	// APIKey is the shared secret clients must present in the X-Api-Key
	// header. Empty disables the gate.
	// Env: API_KEY
	APIKey string `env:"API_KEY"`
}

// Batch holds the limits applied to batch lookups.
type Batch struct {
	// MaxKeys is the maximum number of keys accepted in one batch call.
	// Env: BATCH_MAX_KEYS
	MaxKeys int `env:"MAX_KEYS"`

	// Concurrency is the budget of simultaneous outstanding upstream
	// calls within one batch dispatch.
	// Env: BATCH_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// GetConfig loads, merges, and validates the gateway configuration from
// all available sources. Environment variables take precedence over
// flags; built-in defaults fill whatever remains unset.
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
