package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/service"
	"github.com/MKhiriev/go-item-service/internal/utils"
	"github.com/MKhiriev/go-item-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.ItemService.CreateItem(ctx, item)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("name", item.ItemName()).Msg("item created")

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getItemByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("item id is not an integer")
		http.Error(w, "item id must be an integer", http.StatusBadRequest)
		return
	}

	// q is accepted for compatibility but has no effect on the response.
	if q := r.URL.Query().Get("q"); q != "" {
		log.Debug().Str("q", q).Msg("unused query parameter received")
	}

	details := h.services.ItemService.GetItemDetails(ctx, itemID)

	utils.WriteJSON(w, details, http.StatusOK)
}
