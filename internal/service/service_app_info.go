package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-soap-gateway/internal/config"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/models"
)

type appInfoService struct {
	appVersion string
	translator *locale.Translator
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, translator *locale.Translator, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		translator: translator,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness in the language negotiated for ctx.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		OK:      s.translator.FromContext(ctx, locale.KeyOK),
		Service: s.translator.FromContext(ctx, locale.KeyHealth),
		Welcome: s.translator.FromContext(ctx, locale.KeyWelcome),
		Time:    s.now().UTC().Truncate(time.Millisecond),
	}
}
