package list_amenities

import (
	"errors"
	"net/http"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities"
)

const msgInvalidStatus = "estado de instalación inválido"

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

// Handle GET /api/v1/amenities
// Query params: status (optional, available|occupied|maintenance|disabled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrInvalidInput):
			h.logger.Warn("GET /amenities - Invalid status filter: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /amenities - Failed to list amenities: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /amenities - Amenities listed successfully: count=%d", len(result.Amenities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
