package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-soap-gateway/internal/config"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

const soapRequestContentType = "text/xml; charset=utf-8"

type httpSignerAdapter struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

// Option customizes the HTTP signer adapter.
type Option func(*httpSignerAdapter)

// WithTransport replaces the underlying round tripper. It exists for tests
// that count or stub outbound calls; the transport's own TLS settings apply.
func WithTransport(rt http.RoundTripper) Option {
	return func(h *httpSignerAdapter) {
		h.client.SetTransport(rt)
	}
}

// NewHTTPSignerAdapter constructs an HTTP(S) implementation of [SignerAdapter]
// posting to cfg.URL with cfg.Timeout as the bound of the whole exchange.
// TLS connections trust the authorities in trust (platform roots when trust
// is nil or not pinned).
//
// Returns an error if cfg.URL is not an absolute http(s) URL.
func NewHTTPSignerAdapter(cfg config.Upstream, trust *TrustStore, logger *logger.Logger, opts ...Option) (SignerAdapter, error) {
	endpoint, err := normalizeEndpoint(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(cfg.Timeout, trust.TLSConfig())
	client.SetLogger(&restyLogger{logger: logger})

	h := &httpSignerAdapter{
		client:   client,
		endpoint: endpoint,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Str("endpoint", endpoint).
		Bool("ca_pinned", trust.Pinned()).
		Str("ca_source", trust.Source()).
		Dur("timeout", cfg.Timeout).
		Msg("soap signer adapter created")

	return h, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidUpstreamURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUpstreamURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must include http(s) scheme and host", ErrInvalidUpstreamURL, raw)
	}

	return u.String(), nil
}

// SignTransaction implements [SignerAdapter]. It sends one POST carrying
// envelope with Content-Type text/xml. Transport failures are wrapped in
// [ErrUpstreamTransport], non-2xx answers in [ErrUpstreamStatus].
func (h *httpSignerAdapter) SignTransaction(ctx context.Context, envelope string) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", soapRequestContentType).
		SetBody(envelope).
		Post(h.endpoint)
	if err != nil {
		log.Err(err).Str("endpoint", h.endpoint).Msg("soap request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}

	log.Debug().
		Int("upstream_status", resp.StatusCode()).
		Dur("upstream_duration", resp.Time()).
		Int("upstream_size", len(resp.Body())).
		Msg("soap response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
