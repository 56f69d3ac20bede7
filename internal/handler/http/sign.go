// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/utils"
	"github.com/MKhiriev/go-soap-gateway/models"
)

// soapFaultHeader is set on relayed responses whose body carries a SOAP
// Fault. Status and body are left untouched.
const soapFaultHeader = "X-SOAP-Fault"

func (h *Handler) sign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeSignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.SignService.Sign(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if result.Fault != nil {
		w.Header().Set(soapFaultHeader, "true")
	}

	if _, err = utils.WriteXML(w, result.Body, http.StatusOK); err != nil {
		log.Err(err).Msg("error relaying upstream response")
	}
}

func decodeSignRequest(r *http.Request) (models.SignRequest, error) {
	var req models.SignRequest

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err = sonic.ConfigStd.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return req, nil
}

// writeError renders err as a localized [models.ErrorResponse]. Upstream
// failures also carry the underlying error text in Detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	resp := models.ErrorResponse{
		Error: h.translator.FromContext(r.Context(), messageFromError(err)),
	}

	switch {
	case status == http.StatusBadGateway:
		resp.Detail = err.Error()
		log.Err(err).Int("status", status).Msg("upstream call failed")
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("unexpected error during request handling")
	default:
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
