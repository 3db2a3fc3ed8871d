package delete_amenity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities"
)

const (
	msgMissingAmenityID = "el ID de la instalación es obligatorio"
	msgAmenityNotFound  = "instalación no encontrada"
)

type Handler struct {
	service AmenityService
	logger  Logger
}

func NewHandler(service AmenityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/amenities/{amenityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	amenityID := vars["amenityId"]
	if amenityID == "" {
		h.logger.Warn("DELETE /amenities/{id} - Missing amenity ID")
		handlers.RespondBadRequest(w, msgMissingAmenityID)
		return
	}

	if err := h.service.Delete(r.Context(), amenityID); err != nil {
		switch {
		case errors.Is(err, amenities.ErrAmenityNotFound):
			h.logger.Warn("DELETE /amenities/{id} - Amenity not found: amenity_id=%s", amenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		default:
			h.logger.Error("DELETE /amenities/{id} - Failed to delete amenity: amenity_id=%s, error=%v", amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /amenities/{id} - Amenity deleted successfully: amenity_id=%s", amenityID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
