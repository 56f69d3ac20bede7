// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive, got %d", ErrInvalidServerConfigs, cfg.Server.MaxBodyBytes)
	}

	u, err := url.Parse(cfg.Upstream.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpstreamConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url %q must be absolute http(s)", ErrInvalidUpstreamConfigs, cfg.Upstream.URL)
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidUpstreamConfigs)
	}

	if _, err = language.Parse(cfg.Locale.Default); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidLocaleConfigs, cfg.Locale.Default, err)
	}

	if _, err = zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
