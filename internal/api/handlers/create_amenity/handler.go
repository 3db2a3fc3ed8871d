package create_amenity

import (
	"errors"
	"net/http"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "datos de la instalación inválidos"
	msgDuplicateAmenity   = "la instalación ya existe"
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

// Handle POST /api/v1/amenities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAmenityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /amenities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrInvalidInput):
			h.logger.Warn("POST /amenities - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, amenities.ErrDuplicateAmenity):
			h.logger.Warn("POST /amenities - Duplicate amenity: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateAmenity)

		default:
			h.logger.Error("POST /amenities - Failed to create amenity: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /amenities - Amenity created successfully: amenity_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
