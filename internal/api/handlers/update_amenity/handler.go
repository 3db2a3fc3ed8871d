package update_amenity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities/models"
)

const (
	msgMissingAmenityID   = "el ID de la instalación es obligatorio"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "datos de la instalación inválidos"
	msgAmenityNotFound    = "instalación no encontrada"
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

// Handle PUT /api/v1/amenities/{amenityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	amenityID := vars["amenityId"]
	if amenityID == "" {
		h.logger.Warn("PUT /amenities/{id} - Missing amenity ID")
		handlers.RespondBadRequest(w, msgMissingAmenityID)
		return
	}

	var req models.UpdateAmenityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /amenities/{id} - Invalid request body: amenity_id=%s, error=%v", amenityID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), amenityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrAmenityNotFound):
			h.logger.Warn("PUT /amenities/{id} - Amenity not found: amenity_id=%s", amenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		case errors.Is(err, amenities.ErrInvalidInput):
			h.logger.Warn("PUT /amenities/{id} - Invalid input: amenity_id=%s, error=%v", amenityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /amenities/{id} - Failed to update amenity: amenity_id=%s, error=%v", amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /amenities/{id} - Amenity updated successfully: amenity_id=%s", amenityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
