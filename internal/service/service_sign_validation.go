package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-soap-gateway/internal/validators"
	"github.com/MKhiriev/go-soap-gateway/models"
)

type SignValidationService struct {
	inner     SignService
	validator validators.Validator
}

func NewSignValidationService() SignServiceWrapper {
	return &SignValidationService{
		validator: validators.NewSignRequestValidator(),
	}
}

// Wrap implements [SignServiceWrapper].
func (v *SignValidationService) Wrap(inner SignService) SignService {
	v.inner = inner
	return v
}

func (v *SignValidationService) Sign(ctx context.Context, req models.SignRequest) (models.SignResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SignResult{}, fmt.Errorf("error during sign request validation: %w", err)
	}

	return v.inner.Sign(ctx, req)
}
