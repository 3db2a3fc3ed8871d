package select_datetime

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingDateTime    = "debe indicar una fecha o un horario"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de horario inválido, se espera HH:MM"
	msgSessionNotFound    = "sesión de reserva no encontrada"
	msgInvalidStep        = "operación no permitida en el paso actual"
	msgDateRequired       = "primero debe seleccionar una fecha"
	msgSlotNotAvailable   = "el horario seleccionado no está disponible"
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

// Handle POST /api/v1/wizard/{sessionId}/datetime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/datetime - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == "" && req.Time == "" {
		h.logger.Warn("POST /wizard/{id}/datetime - Empty request: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingDateTime)
		return
	}

	var view *wizard.SessionView

	// Сначала дата: смена даты пересчитывает слоты и может сбросить время
	if req.Date != "" {
		date, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("POST /wizard/{id}/datetime - Invalid date format: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		view, err = h.service.SelectDate(r.Context(), sessionID, date)
		if err != nil {
			h.respondError(w, sessionID, err)
			return
		}
	}

	// Затем время из уже пересчитанного списка слотов
	if req.Time != "" {
		slotTime, err := types.NewTimeStringFromString(req.Time)
		if err != nil {
			h.logger.Warn("POST /wizard/{id}/datetime - Invalid time format: session_id=%s, time=%s", sessionID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}

		view, err = h.service.SelectTime(sessionID, slotTime)
		if err != nil {
			h.respondError(w, sessionID, err)
			return
		}
	}

	h.logger.Info("POST /wizard/{id}/datetime - Date/time selected: session_id=%s, date=%s, time=%s",
		sessionID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, view)
}

// respondError транслирует ошибки сервиса мастера в HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		h.logger.Warn("POST /wizard/{id}/datetime - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrInvalidStep):
		h.logger.Warn("POST /wizard/{id}/datetime - Invalid step: session_id=%s", sessionID)
		handlers.RespondConflict(w, msgInvalidStep)

	case errors.Is(err, wizard.ErrDateRequired):
		h.logger.Warn("POST /wizard/{id}/datetime - Date required: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgDateRequired)

	case errors.Is(err, wizard.ErrSlotNotAvailable):
		h.logger.Warn("POST /wizard/{id}/datetime - Slot not available: session_id=%s", sessionID)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	default:
		h.logger.Error("POST /wizard/{id}/datetime - Failed to select date/time: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
	}
}
