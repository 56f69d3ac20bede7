// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// redacted replaces secret values wherever credentials are printed or logged.
const redacted = "[REDACTED]"

// Credentials identifies the caller towards the upstream signing service.
// They are supplied per request, embedded into the WS-Security UsernameToken
// and never persisted.
type Credentials struct {
	// Username is placed into wsse:Username.
	Username string `json:"username"`

	// Password is placed into wsse:Password as plain text.
	Password string `json:"password"`
}

// String implements [fmt.Stringer] without disclosing the password.
func (c Credentials) String() string {
	return "Credentials{Username: " + c.Username + ", Password: " + redacted + "}"
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that
// credentials passed to a logger never leak the password.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username).Str("password", redacted)
}
