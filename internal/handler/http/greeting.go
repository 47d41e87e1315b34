package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-service/internal/utils"
	"github.com/MKhiriev/go-item-service/models"
)

func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	greeting := models.Greeting{
		Message: h.services.AppInfoService.GetGreeting(r.Context()),
	}

	utils.WriteJSON(w, greeting, http.StatusOK)
}
