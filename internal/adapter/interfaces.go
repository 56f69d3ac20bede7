// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the upstream SOAP
// signing service.
//
// The primary abstraction is [SignerAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP(S) implementation
// ([NewHTTPSignerAdapter]) built on resty, trusting the certificate
// authorities of a [TrustStore] loaded once at startup.
//
// Failures are reported as [ErrUpstreamTransport] (nothing usable came back)
// or [ErrUpstreamStatus] (a non-2xx answer), so callers can use [errors.Is]
// for protocol-agnostic error handling.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/signer_adapter_mock.go -package=mock

// SignerAdapter forwards a SOAP envelope to the signing service.
type SignerAdapter interface {
	// SignTransaction POSTs envelope exactly once and returns the raw
	// response body of a 2xx answer. The body is not interpreted.
	SignTransaction(ctx context.Context, envelope string) ([]byte, error)
}
