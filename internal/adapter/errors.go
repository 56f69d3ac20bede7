package adapter

import "errors"

var (
	// ErrUpstreamTransport wraps failures that prevented a complete response
	// from being received: DNS, connection refused, TLS handshake, timeout.
	ErrUpstreamTransport = errors.New("upstream transport error")

	// ErrUpstreamStatus is returned when the upstream answered with a status
	// outside of 2xx.
	ErrUpstreamStatus = errors.New("upstream responded with unsuccessful status")

	// ErrNoCertificatesInBundle is returned when a CA bundle file exists but
	// holds no PEM certificate.
	ErrNoCertificatesInBundle = errors.New("no certificates found in CA bundle")

	// ErrInvalidUpstreamURL is returned for an empty or non-absolute URL.
	ErrInvalidUpstreamURL = errors.New("invalid upstream url")
)
