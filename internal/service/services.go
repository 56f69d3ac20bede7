package service

import (
	"fmt"

	"github.com/MKhiriev/go-soap-gateway/internal/adapter"
	"github.com/MKhiriev/go-soap-gateway/internal/config"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
)

type Services struct {
	SignService    SignService
	AppInfoService AppInfoService
}

func NewServices(signer adapter.SignerAdapter, translator *locale.Translator, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, translator, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SignService:    NewSignValidationService().Wrap(NewSignService(signer, logger)),
		AppInfoService: appInfo,
	}, nil
}
