package start_wizard

import (
	"net/http"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/api/middleware"
)

const msgMissingUserID = "falta el ID de usuario"

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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	view := h.service.Start(userID)

	h.logger.Info("POST /wizard - Wizard session started: session_id=%s, user_id=%d", view.SessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, view)
}
