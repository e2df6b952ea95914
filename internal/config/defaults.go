package config

import "time"

// Built-in defaults mirroring the provider's documented limits: the
// seeker.red basic-lookup endpoint, its 15 second call timeout, the
// 20-key batch cap, and a budget of 5 simultaneous upstream calls.
const (
	DefaultServerAddress   = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUpstreamURL     = "https://seeker.red/personas/apiBasico/dni"
	DefaultUpstreamTimeout = 15 * time.Second
	DefaultBatchMaxKeys    = 20
	DefaultConcurrency     = 5
)

// defaultConfig returns the built-in defaults. It is merged last by the
// builder, so it only fills fields left unset by env vars and flags.
// The upstream token and the inbound API key deliberately have no
// default.
func defaultConfig() *Config {
	return &Config{
		Server: Server{
			Address:        DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Upstream: Upstream{
			URL:     DefaultUpstreamURL,
			Timeout: DefaultUpstreamTimeout,
		},
		Batch: Batch{
			MaxKeys:     DefaultBatchMaxKeys,
			Concurrency: DefaultConcurrency,
		},
	}
}
