package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

const (
	msgSessionNotFound  = "sesión de reserva no encontrada"
	msgInvalidStep      = "operación no permitida en el paso actual"
	msgDateRequired     = "primero debe seleccionar una fecha"
	msgTimeRequired     = "primero debe seleccionar un horario"
	msgSlotTaken        = "el horario ya fue reservado, elija otro"
	msgSubmissionFailed = "no se pudo enviar la reserva, intente nuevamente"
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

// Handle POST /api/v1/wizard/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("POST /wizard/{id}/confirm - Invalid step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, wizard.ErrDateRequired):
			h.logger.Warn("POST /wizard/{id}/confirm - Date required: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, wizard.ErrTimeRequired):
			h.logger.Warn("POST /wizard/{id}/confirm - Time required: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgTimeRequired)

		case errors.Is(err, wizard.ErrSlotTaken):
			h.logger.Warn("POST /wizard/{id}/confirm - Slot taken: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, wizard.ErrSubmissionFailed):
			h.logger.Error("POST /wizard/{id}/confirm - Submission failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /wizard/{id}/confirm - Failed to confirm reservation: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/confirm - Reservation confirmed: session_id=%s, reservation_id=%s",
		sessionID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
