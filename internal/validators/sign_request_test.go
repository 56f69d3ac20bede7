// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-soap-gateway/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignRequest() models.SignRequest {
	return models.SignRequest{
		Username:    "u",
		Password:    "p",
		Transaction: &models.Transaction{ID: "1"},
	}
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestSignRequestValidator_Valid(t *testing.T) {
	v := NewSignRequestValidator()
	req := validSignRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestSignRequestValidator_EmptyTransactionObjectIsAccepted(t *testing.T) {
	req := validSignRequest()
	req.Transaction = &models.Transaction{}

	assert.NoError(t, NewSignRequestValidator().Validate(context.Background(), req))
}

func TestSignRequestValidator_Missing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SignRequest)
		wantMsg string
	}{
		{name: "username", mutate: func(r *models.SignRequest) { r.Username = "" }, wantMsg: "username"},
		{name: "password", mutate: func(r *models.SignRequest) { r.Password = "" }, wantMsg: "password"},
		{name: "transaction", mutate: func(r *models.SignRequest) { r.Transaction = nil }, wantMsg: "transaction"},
		{name: "everything", mutate: func(r *models.SignRequest) { *r = models.SignRequest{} }, wantMsg: "username, password, transaction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignRequest()
			tt.mutate(&req)

			err := NewSignRequestValidator().Validate(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSignRequestValidator_NilPointer(t *testing.T) {
	var req *models.SignRequest

	err := NewSignRequestValidator().Validate(context.Background(), req)

	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestSignRequestValidator_FieldScoping(t *testing.T) {
	req := models.SignRequest{Username: "u"}
	v := NewSignRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldUsername, FieldPassword), ErrMissingRequiredFields)
}

func TestSignRequestValidator_UnknownField(t *testing.T) {
	err := NewSignRequestValidator().Validate(context.Background(), validSignRequest(), "amount")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSignRequestValidator_UnsupportedType(t *testing.T) {
	err := NewSignRequestValidator().Validate(context.Background(), models.Transaction{})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
