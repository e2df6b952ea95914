package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates invalid provider settings
	// (for example, an empty endpoint URL or non-positive timeout).
	// Note the bearer token is intentionally not validated at startup.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidBatchConfigs indicates invalid batch limits
	// (for example, a zero key cap or zero concurrency budget).
	ErrInvalidBatchConfigs = errors.New("invalid batch configuration")
)
