// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locale holds the gateway's user-facing messages in every supported
// language and negotiates the language of each response.
package locale

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

// Key identifies a translatable message.
type Key string

const (
	KeyOK             Key = "OK"
	KeyHealth         Key = "HEALTH"
	KeyWelcome        Key = "WELCOME"
	KeyMissingFields  Key = "MISSING_FIELDS"
	KeyInvalidJSON    Key = "INVALID_JSON"
	KeyBodyTooLarge   Key = "BODY_TOO_LARGE"
	KeyUpstreamFailed Key = "UPSTREAM_FAILED"
	KeyInternal       Key = "INTERNAL"
)

// ErrUnsupportedLocale is returned by [New] for a default language that has
// no message set.
var ErrUnsupportedLocale = errors.New("unsupported locale")

var messages = map[language.Tag]map[Key]string{
	language.Portuguese: {
		KeyOK:             "ok",
		KeyHealth:         "API REST do gateway SOAP",
		KeyWelcome:        "Bem-vindo ao gateway de assinatura",
		KeyMissingFields:  "username, password e transaction são obrigatórios",
		KeyInvalidJSON:    "JSON inválido",
		KeyBodyTooLarge:   "corpo da requisição excede o limite permitido",
		KeyUpstreamFailed: "Falha ao contatar serviço SOAP",
		KeyInternal:       "erro interno",
	},
	language.English: {
		KeyOK:             "ok",
		KeyHealth:         "SOAP gateway REST API",
		KeyWelcome:        "Welcome to the signing gateway",
		KeyMissingFields:  "username, password and transaction are required",
		KeyInvalidJSON:    "invalid JSON",
		KeyBodyTooLarge:   "request body exceeds the allowed limit",
		KeyUpstreamFailed: "Failed to contact SOAP service",
		KeyInternal:       "internal error",
	},
}

// Supported lists the languages with a complete message set; the first one
// is the built-in default.
var Supported = []language.Tag{language.Portuguese, language.English}

// Translator renders messages for a negotiated language. It is immutable
// after construction and safe for concurrent use.
type Translator struct {
	printers map[language.Tag]*message.Printer
	matcher  language.Matcher
	fallback language.Tag
}

// New builds a Translator whose fallback language is defaultLang
// (e.g. "pt", "en-US"). The language must match one of [Supported].
func New(defaultLang string) (*Translator, error) {
	requested, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedLocale, defaultLang, err)
	}

	matcher := language.NewMatcher(Supported)
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, defaultLang)
	}
	fallback := Supported[idx]

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, set := range messages {
		for key, text := range set {
			if err = builder.SetString(tag, string(key), text); err != nil {
				return nil, fmt.Errorf("error registering message %s for %s: %w", key, tag, err)
			}
		}
	}

	printers := make(map[language.Tag]*message.Printer, len(Supported))
	for _, tag := range Supported {
		printers[tag] = message.NewPrinter(tag, message.Catalog(builder))
	}

	return &Translator{
		printers: printers,
		matcher:  matcher,
		fallback: fallback,
	}, nil
}

// Default returns the fallback language.
func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Resolve picks the response language from, in order of priority, an
// explicit choice (query parameter, then cookie) and an Accept-Language
// header. Unparseable or unsupported values are skipped; when nothing
// matches the fallback language is returned.
func (t *Translator) Resolve(explicit []string, acceptLanguage string) language.Tag {
	for _, raw := range explicit {
		if raw == "" {
			continue
		}
		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		if match, ok := t.match(tag); ok {
			return match
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if match, ok := t.match(tags...); ok {
				return match
			}
		}
	}

	return t.fallback
}

func (t *Translator) match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return Supported[idx], true
}

// Translate returns the message for key in tag, falling back to the default
// language for tags without a message set.
func (t *Translator) Translate(tag language.Tag, key Key) string {
	p, ok := t.printers[tag]
	if !ok {
		p = t.printers[t.fallback]
	}
	return p.Sprintf(string(key))
}

// FromContext translates key into the language negotiated for the request
// carried by ctx.
func (t *Translator) FromContext(ctx context.Context, key Key) string {
	tag, ok := utils.GetLanguageFromContext(ctx)
	if !ok {
		tag = t.fallback
	}
	return t.Translate(tag, key)
}
