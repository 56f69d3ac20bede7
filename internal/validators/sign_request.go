package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-soap-gateway/models"
)

// Field name constants of a sign request, in the order they are reported.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldTransaction = "transaction"
)

var signRequestFields = []string{FieldUsername, FieldPassword, FieldTransaction}

// SignRequestValidator checks that a sign request carries everything the
// envelope needs. Transaction members are not inspected: an empty
// transaction object is forwarded as is.
type SignRequestValidator struct {
}

func NewSignRequestValidator() Validator {
	return &SignRequestValidator{}
}

func (v *SignRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignRequest:
		return v.validateSignRequest(value, fields...)
	case *models.SignRequest:
		if value == nil {
			return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(signRequestFields, ", "))
		}
		return v.validateSignRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SignRequestValidator) validateSignRequest(req models.SignRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signRequestFields
	}

	var missing []string
	for _, field := range fields {
		present, err := hasField(req, field)
		if err != nil {
			return err
		}
		if !present {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	return nil
}

func hasField(req models.SignRequest, field string) (bool, error) {
	switch field {
	case FieldUsername:
		return req.Username != "", nil
	case FieldPassword:
		return req.Password != "", nil
	case FieldTransaction:
		return req.Transaction != nil, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}
