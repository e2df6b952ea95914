package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-upstream-url lookup provider endpoint
//	-upstream-token bearer credential for the provider
//	-upstream-timeout outbound call timeout (e.g., "15s")
//	-api-key inbound shared secret (empty disables the gate)
//	-batch-max-keys maximum keys per batch request
//	-batch-concurrency simultaneous upstream calls per batch
func ParseFlags() *Config {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var upstreamURL string
	var upstreamToken string
	var upstreamTimeout time.Duration
	var apiKey string
	var batchMaxKeys int
	var batchConcurrency int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&upstreamURL, "upstream-url", "", "Lookup provider endpoint")
	flag.StringVar(&upstreamToken, "upstream-token", "", "Provider bearer token")
	flag.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Outbound call timeout (e.g., 15s)")
	flag.StringVar(&apiKey, "api-key", "", "Inbound shared secret")
	flag.IntVar(&batchMaxKeys, "batch-max-keys", 0, "Maximum keys per batch")
	flag.IntVar(&batchConcurrency, "batch-concurrency", 0, "Simultaneous upstream calls per batch")

	flag.Parse()

	return &Config{
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Upstream: Upstream{
			URL:     upstreamURL,
			Token:   upstreamToken,
			Timeout: upstreamTimeout,
		},
		Auth: Auth{
			APIKey: apiKey,
		},
		Batch: Batch{
			MaxKeys:     batchMaxKeys,
			Concurrency: batchConcurrency,
		},
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the
// merge step can fall through to env vars or defaults.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost" or empty, and returns an error if the format or
// values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
