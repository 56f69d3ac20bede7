// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// TrustStore holds the certificate authorities trusted for the upstream TLS
// connection. It is loaded once at startup and never mutated, so one value
// may be shared by every outbound call.
type TrustStore struct {
	pool   *x509.CertPool
	source string
}

// LoadTrustStore reads a PEM bundle from path.
//
// An empty path or a file that does not exist yields a TrustStore without a
// pinned pool: connections are verified against the platform roots. A file
// that exists but cannot be read or holds no certificate is an error.
func LoadTrustStore(path string) (*TrustStore, error) {
	if path == "" {
		return &TrustStore{}, nil
	}

	pem, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &TrustStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CA bundle %s: %w", path, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: %s", ErrNoCertificatesInBundle, path)
	}

	return &TrustStore{pool: pool, source: path}, nil
}

// NewTrustStore wraps an existing pool. A nil pool means platform roots.
func NewTrustStore(pool *x509.CertPool) *TrustStore {
	return &TrustStore{pool: pool}
}

// Pinned reports whether a CA bundle was loaded.
func (t *TrustStore) Pinned() bool {
	return t != nil && t.pool != nil
}

// Source returns the path the bundle was read from, empty if none.
func (t *TrustStore) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// TLSConfig returns a fresh client configuration trusting the store.
// TLS 1.2 is the minimum accepted version.
func (t *TrustStore) TLSConfig() *tls.Config {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if t.Pinned() {
		cfg.RootCAs = t.pool
	}
	return cfg
}
