package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30*time.Second, map[string]string{"Accept": "application/json"})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the given
// request timeout and default headers applied to every request.
//
// A non-positive timeout leaves the resty default (no client timeout) in
// place. Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are disabled; every
// request maps to exactly one round trip.
func NewHTTPClient(timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if len(headers) > 0 {
		client.SetHeaders(headers)
	}

	return &HTTPClient{Client: client}
}

// Timeout returns the request timeout configured on the underlying
// *http.Client.
func (c *HTTPClient) Timeout() time.Duration {
	return c.GetClient().Timeout
}
