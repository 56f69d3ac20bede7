// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// gateway. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identification of the running service.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Upstream describes the SOAP signing service every request is
	// forwarded to.
	Upstream Upstream `envPrefix:"SOAP_"`

	// Locale holds message localization settings.
	Locale Locale `envPrefix:"LOCALE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Port is the bare listening port kept for deployments that only set
	// PORT. It is folded into Server.HTTPAddress as ":PORT" when no explicit
	// address is configured.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds service identification values.
type App struct {
	// ServiceName is reported in logs.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" form. The host may be empty to listen on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading a full inbound request.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes caps the size of inbound request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Upstream holds the settings of the outbound SOAP call.
type Upstream struct {
	// URL is the SOAP endpoint every envelope is POSTed to.
	// Env: SOAP_URL
	URL string `env:"URL"`

	// CAPath points to a PEM bundle with the certificate authorities trusted
	// for the upstream TLS connection. A missing file means the platform
	// roots are used.
	// Env: SOAP_CA_PATH
	CAPath string `env:"CA_PATH"`

	// Timeout bounds the whole upstream exchange.
	// Env: SOAP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Locale holds localization settings.
type Locale struct {
	// Default is the language used when the caller expresses no preference.
	// Env: LOCALE_DEFAULT
	Default string `env:"DEFAULT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the configuration used when no source overrides a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ServiceName: "soap-gateway",
			Version:     "dev",
		},
		Server: Server{
			HTTPAddress:     ":4000",
			ReadTimeout:     15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Upstream: Upstream{
			URL:     "https://localhost:8443/wsdl",
			CAPath:  "../certs/ca/ca.cert.pem",
			Timeout: 10 * time.Second,
		},
		Locale: Locale{
			Default: "pt",
		},
		Log: Log{
			Level: "debug",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
