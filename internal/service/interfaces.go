package service

import (
	"context"

	"github.com/MKhiriev/go-soap-gateway/models"
)

// SignService turns a sign request into exactly one upstream SOAP call.
type SignService interface {
	// Sign builds the envelope for req, forwards it and returns the raw
	// upstream answer. Validation failures never reach the upstream.
	Sign(ctx context.Context, req models.SignRequest) (models.SignResult, error)
}

// AppInfoService exposes process metadata and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// SignServiceWrapper defines middleware composition for SignService.
// Implementations wrap an existing SignService to add behavior such as
// validation.
type SignServiceWrapper interface {
	Wrap(SignService) SignService // returns a decorated SignService applying additional behavior
}
