// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Upstream.Token = "some-token"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *Config) {},
		},
		{
			// the token is a per-request concern, never a startup failure
			name:   "missing token is still valid",
			mutate: func(cfg *Config) { cfg.Upstream.Token = "" },
		},
		{
			name:    "empty server address",
			mutate:  func(cfg *Config) { cfg.Server.Address = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty upstream url",
			mutate:  func(cfg *Config) { cfg.Upstream.URL = "" },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "zero upstream timeout",
			mutate:  func(cfg *Config) { cfg.Upstream.Timeout = 0 },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "negative upstream timeout",
			mutate:  func(cfg *Config) { cfg.Upstream.Timeout = -time.Second },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "zero batch cap",
			mutate:  func(cfg *Config) { cfg.Batch.MaxKeys = 0 },
			wantErr: ErrInvalidBatchConfigs,
		},
		{
			name:    "zero concurrency budget",
			mutate:  func(cfg *Config) { cfg.Batch.Concurrency = 0 },
			wantErr: ErrInvalidBatchConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
