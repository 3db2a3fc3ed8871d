package get_amenity

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

// Handle GET /api/v1/amenities/{amenityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	amenityID := vars["amenityId"]
	if amenityID == "" {
		h.logger.Warn("GET /amenities/{id} - Missing amenity ID")
		handlers.RespondBadRequest(w, msgMissingAmenityID)
		return
	}

	result, err := h.service.GetByID(r.Context(), amenityID)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrAmenityNotFound):
			h.logger.Warn("GET /amenities/{id} - Amenity not found: amenity_id=%s", amenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		default:
			h.logger.Error("GET /amenities/{id} - Failed to get amenity: amenity_id=%s, error=%v", amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /amenities/{id} - Amenity retrieved successfully: amenity_id=%s", amenityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
