package http

import (
	"net/http"

	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.Health(r.Context())

	if _, err := utils.WriteJSON(w, health, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
