// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",
		"PORT":   "4100",

		"APP_SERVICE_NAME": "gateway-test",
		"APP_VERSION":      "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_READ_TIMEOUT":     "5s",
		"SERVER_SHUTDOWN_TIMEOUT": "7s",
		"SERVER_MAX_BODY_BYTES":   "2048",

		"SOAP_URL":     "https://signer.example:8443/wsdl",
		"SOAP_CA_PATH": "/etc/ca.pem",
		"SOAP_TIMEOUT": "3s",

		"LOCALE_DEFAULT": "en",
		"LOG_LEVEL":      "info",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "4100", cfg.Port)

	assert.Equal(t, "gateway-test", cfg.App.ServiceName)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)

	assert.Equal(t, "https://signer.example:8443/wsdl", cfg.Upstream.URL)
	assert.Equal(t, "/etc/ca.pem", cfg.Upstream.CAPath)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)

	assert.Equal(t, "en", cfg.Locale.Default)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_NoVariables_LeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Upstream.URL)
	assert.Zero(t, cfg.Upstream.Timeout)
}
