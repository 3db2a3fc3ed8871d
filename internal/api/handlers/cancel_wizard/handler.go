package cancel_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

const msgSessionNotFound = "sesión de reserva no encontrada"

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

// Handle DELETE /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Cancel(sessionID); err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("DELETE /wizard/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /wizard/{id} - Failed to cancel session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizard/{id} - Session cancelled: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
