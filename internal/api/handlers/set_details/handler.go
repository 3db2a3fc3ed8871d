package set_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSessionNotFound    = "sesión de reserva no encontrada"
	msgInvalidStep        = "operación no permitida en el paso actual"
	msgPeopleOutOfRange   = "cantidad de personas fuera de rango"
	msgInvalidInput       = "datos de la solicitud inválidos"
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

// Handle POST /api/v1/wizard/{sessionId}/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/details - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SetDetails(sessionID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/details - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("POST /wizard/{id}/details - Invalid step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, wizard.ErrPeopleOutOfRange):
			h.logger.Warn("POST /wizard/{id}/details - People out of range: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgPeopleOutOfRange)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/details - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /wizard/{id}/details - Failed to set details: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/details - Details updated: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
