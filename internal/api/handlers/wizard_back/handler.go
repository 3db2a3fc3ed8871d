package wizard_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

const (
	msgSessionNotFound = "sesión de reserva no encontrada"
	msgInvalidStep     = "no es posible retroceder desde el primer paso"
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

// Handle POST /api/v1/wizard/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.Back(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("POST /wizard/{id}/back - Already at first step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidStep)

		default:
			h.logger.Error("POST /wizard/{id}/back - Failed to go back: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/back - Step reverted: session_id=%s, step=%s", sessionID, view.Step)
	handlers.RespondJSON(w, http.StatusOK, view)
}
