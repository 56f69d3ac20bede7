package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-soap-gateway/internal/config"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/service"
	"github.com/MKhiriev/go-soap-gateway/internal/utils"
	"github.com/MKhiriev/go-soap-gateway/models"
)

// ---- Stub: SignService ----

type stubSignService struct {
	calls  int
	last   models.SignRequest
	result models.SignResult
	err    error
}

func (s *stubSignService) Sign(_ context.Context, req models.SignRequest) (models.SignResult, error) {
	s.calls++
	s.last = req
	return s.result, s.err
}

// ---- Stub: AppInfoService ----

type stubAppInfoService struct {
	translator *locale.Translator
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return "test-version"
}

func (s *stubAppInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		OK:      s.translator.FromContext(ctx, locale.KeyOK),
		Service: s.translator.FromContext(ctx, locale.KeyHealth),
		Welcome: s.translator.FromContext(ctx, locale.KeyWelcome),
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestTranslator(t *testing.T) *locale.Translator {
	t.Helper()
	translator, err := locale.New("pt")
	require.NoError(t, err)
	return translator
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return &Handler{
		services:     services,
		translator:   newTestTranslator(t),
		traceIDs:     utils.NewUUIDGenerator(),
		maxBodyBytes: config.Defaults().Server.MaxBodyBytes,
		logger:       logger.Nop(),
	}
}

func newStubHandler(t *testing.T, sign *stubSignService) *Handler {
	t.Helper()
	translator := newTestTranslator(t)
	h := newTestHandler(t, &service.Services{
		SignService:    sign,
		AppInfoService: &stubAppInfoService{translator: translator},
	})
	h.translator = translator
	return h
}
