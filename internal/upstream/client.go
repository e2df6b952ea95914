// SPDX-License-Identifier: Apache-2.0

package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ravasquez/dni-gateway/internal/config"
)

type seekerClient struct {
	client *resty.Client
	url    string
	token  string
}

// NewClient builds a Client for the configured provider endpoint.
// A zero or negative timeout falls back to 15 seconds, the provider's
// documented limit.
func NewClient(cfg config.Upstream) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(cfg.Timeout)

	return &seekerClient{client: cli, url: cfg.URL, token: cfg.Token}
}

// Lookup implements Client. It posts the DNI as a form-encoded body with
// the bearer credential and returns the provider's response body
// verbatim. Failures are classified before being returned:
//   - [ErrTokenNotConfigured] when no credential is configured (checked
//     before any network activity);
//   - a wrapped transport error when the request could not complete
//     (DNS, connection refused, TLS, timeout);
//   - [*HTTPError] when the provider answered with a non-2xx status.
func (c *seekerClient) Lookup(ctx context.Context, dni string) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrTokenNotConfigured
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.token).
		SetFormData(map[string]string{"dni": dni}).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// mapHTTPError converts a non-2xx provider response into an *HTTPError.
// 2xx responses yield nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &HTTPError{Status: resp.StatusCode(), Body: body}
}
