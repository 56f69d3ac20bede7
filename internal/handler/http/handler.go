package http

import (
	"github.com/MKhiriev/go-soap-gateway/internal/config"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/service"
	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

type Handler struct {
	services   *service.Services
	translator *locale.Translator
	traceIDs   *utils.UUIDGenerator

	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, translator *locale.Translator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		translator:   translator,
		traceIDs:     utils.NewUUIDGenerator(),
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}
