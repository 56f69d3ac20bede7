// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-soap-gateway/internal/adapter"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/soap"
	"github.com/MKhiriev/go-soap-gateway/models"
)

type signService struct {
	signer adapter.SignerAdapter

	logger *logger.Logger
}

// NewSignService returns a SignService that forwards every request to
// signer. It does not validate its input; wrap it with
// [NewSignValidationService] for that.
func NewSignService(signer adapter.SignerAdapter, logger *logger.Logger) SignService {
	return &signService{
		signer: signer,
		logger: logger,
	}
}

func (s *signService) Sign(ctx context.Context, req models.SignRequest) (models.SignResult, error) {
	log := logger.FromContext(ctx)

	if req.Transaction == nil {
		return models.SignResult{}, fmt.Errorf("%w: no transaction", ErrInvalidSignRequest)
	}

	creds := req.Credentials()
	log.Debug().
		Object("credentials", creds).
		Object("transaction", *req.Transaction).
		Msg("building soap envelope")

	envelope, err := soap.BuildEnvelope(creds, *req.Transaction)
	if err != nil {
		return models.SignResult{}, fmt.Errorf("%w: %w", ErrBuildingEnvelope, err)
	}

	body, err := s.signer.SignTransaction(ctx, envelope)
	if err != nil {
		return models.SignResult{}, err
	}

	result := models.SignResult{Body: body}

	// Faults are reported, not translated: callers parse the XML themselves.
	fault, err := soap.FindFault(body)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("upstream body is not a soap envelope")
	case fault != nil:
		log.Warn().
			Str("fault_code", fault.Code).
			Str("fault_string", fault.String).
			Str("transaction_id", req.Transaction.ID).
			Msg("upstream returned a soap fault with a success status")
		result.Fault = fault
	}

	return result, nil
}
