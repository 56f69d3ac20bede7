package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client for single-shot outbound calls:
// retries are disabled, every request is bounded by timeout and TLS
// connections are verified with tlsConfig. A nil tlsConfig keeps Go's
// defaults (platform roots).
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration, tlsConfig *tls.Config) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)

	if tlsConfig != nil {
		client.SetTLSClientConfig(tlsConfig)
	}

	return &HTTPClient{Client: client}
}
