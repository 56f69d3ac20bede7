package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-soap-gateway/internal/adapter"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/service"
	"github.com/MKhiriev/go-soap-gateway/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	validators.ErrMissingRequiredFields: http.StatusBadRequest,
	service.ErrInvalidSignRequest:       http.StatusBadRequest,
	service.ErrBuildingEnvelope:         http.StatusInternalServerError,

	adapter.ErrUpstreamTransport: http.StatusBadGateway,
	adapter.ErrUpstreamStatus:    http.StatusBadGateway,
}

var errorMessageMap = map[error]locale.Key{
	ErrInvalidJSON:  locale.KeyInvalidJSON,
	ErrBodyTooLarge: locale.KeyBodyTooLarge,

	validators.ErrMissingRequiredFields: locale.KeyMissingFields,
	service.ErrInvalidSignRequest:       locale.KeyMissingFields,

	adapter.ErrUpstreamTransport: locale.KeyUpstreamFailed,
	adapter.ErrUpstreamStatus:    locale.KeyUpstreamFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) locale.Key {
	for target, key := range errorMessageMap {
		if errors.Is(err, target) {
			return key
		}
	}
	return locale.KeyInternal
}
