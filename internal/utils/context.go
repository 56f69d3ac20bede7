// Package utils provides general-purpose helper utilities used across the
// gateway: context keys, HTTP response writing, outbound HTTP client
// initialization and identifier generation.
package utils

import (
	"context"

	"golang.org/x/text/language"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// LanguageCtxKey is the key used to store the negotiated response language
// in the request context.
var LanguageCtxKey = contextKey("language")

// WithLanguage returns a copy of ctx carrying tag.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, LanguageCtxKey, tag)
}

// GetLanguageFromContext retrieves the negotiated language from the context.
//
// Returns ok == false when no language was stored or the value has an
// unexpected type.
func GetLanguageFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(LanguageCtxKey).(language.Tag)
	return tag, ok
}
