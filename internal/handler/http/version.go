package http

import (
	"net/http"

	"github.com/MKhiriev/asset-tracker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, http.StatusOK, h.services.AppInfoService.GetAppVersion(r.Context()))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
