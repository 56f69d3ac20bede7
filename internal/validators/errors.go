package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields is returned when at least one required member
	// of a sign request is absent or empty. The wrapping error names them.
	ErrMissingRequiredFields = errors.New("required fields are missing")
)
