package http

import (
	"net/http"

	"github.com/MKhiriev/resource-service/internal/utils"
	"github.com/MKhiriev/resource-service/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}

// health answers GET / with a static descriptor.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		OK:      true,
		Service: h.services.AppInfoService.GetServiceName(r.Context()),
	}, http.StatusOK)
}
