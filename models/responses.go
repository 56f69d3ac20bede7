// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HealthResponse is the body of GET /health. The textual fields are
// localized for the language negotiated with the caller.
type HealthResponse struct {
	OK      string    `json:"ok"`
	Service string    `json:"service"`
	Welcome string    `json:"welcome"`
	Time    time.Time `json:"time"`
}

// ErrorResponse is the JSON body of every non-2xx gateway response.
// Detail carries the raw underlying error and is set only for upstream
// failures.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// SignResult is the outcome of a successful upstream call.
type SignResult struct {
	// Body is the raw upstream response, relayed verbatim.
	Body []byte

	// Fault is non-nil when the upstream answered 2xx with a SOAP Fault.
	// The gateway only reports it; the body is still relayed unchanged.
	Fault *SOAPFault
}

// SOAPFault holds the identifying parts of a soap:Fault element.
type SOAPFault struct {
	Code   string
	String string
}
