package select_amenity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgMissingAmenityID     = "el ID de la instalación es obligatorio"
	msgSessionNotFound      = "sesión de reserva no encontrada"
	msgInvalidStep          = "operación no permitida en el paso actual"
	msgAmenityNotFound      = "instalación no encontrada"
	msgAmenityNotSelectable = "la instalación no está disponible para nuevas reservas"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/amenity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectAmenityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/amenity - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AmenityID == "" {
		h.logger.Warn("POST /wizard/{id}/amenity - Missing amenity ID: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingAmenityID)
		return
	}

	view, err := h.service.SelectAmenity(r.Context(), sessionID, req.AmenityID, req.Rebook)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/amenity - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("POST /wizard/{id}/amenity - Invalid step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, wizard.ErrAmenityNotFound):
			h.logger.Warn("POST /wizard/{id}/amenity - Amenity not found: session_id=%s, amenity_id=%s", sessionID, req.AmenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		case errors.Is(err, wizard.ErrAmenityNotSelectable):
			h.logger.Warn("POST /wizard/{id}/amenity - Amenity not selectable: session_id=%s, amenity_id=%s", sessionID, req.AmenityID)
			handlers.RespondBadRequest(w, msgAmenityNotSelectable)

		default:
			h.logger.Error("POST /wizard/{id}/amenity - Failed to select amenity: session_id=%s, amenity_id=%s, error=%v",
				sessionID, req.AmenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/amenity - Amenity selected: session_id=%s, amenity_id=%s", sessionID, req.AmenityID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
