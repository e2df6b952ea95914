// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [Config] satisfies all gateway
// invariants before it is used at startup.
//
// The upstream bearer token is deliberately not required here: its
// absence is a per-request configuration error, not a startup failure.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Upstream.URL == "" || cfg.Upstream.Timeout <= 0 {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Batch.MaxKeys < 1 || cfg.Batch.Concurrency < 1 {
		return ErrInvalidBatchConfigs
	}

	return nil
}
