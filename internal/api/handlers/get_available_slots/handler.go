package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
	"github.com/facilitae/FAC-AmenityService/internal/domain"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
)

const (
	msgMissingAmenityID = "el ID de la instalación es obligatorio"
	msgMissingDate      = "la fecha es obligatoria"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidMode      = "modo de consulta inválido"
	msgAmenityNotFound  = "instalación no encontrada"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/amenities/{amenityId}/available-slots
// Query params: date (required, YYYY-MM-DD), mode (optional, customer|facility-admin)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем amenityId из URL
	amenityID := vars["amenityId"]
	if amenityID == "" {
		h.logger.Warn("GET /amenities/{id}/available-slots - Missing amenity ID")
		handlers.RespondBadRequest(w, msgMissingAmenityID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /amenities/{id}/available-slots - Missing date: amenity_id=%s", amenityID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем mode из query параметров; по умолчанию customer
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = string(domain.ModeCustomer)
	}
	if !domain.IsValidMode(domain.ConsumerMode(mode)) {
		h.logger.Warn("GET /amenities/{id}/available-slots - Invalid mode: amenity_id=%s, mode=%s", amenityID, mode)
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(amenityID, dateStr, mode)
	if err != nil {
		h.logger.Warn("GET /amenities/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAmenityNotFound):
			h.logger.Warn("GET /amenities/{id}/available-slots - Amenity not found: amenity_id=%s", amenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /amenities/{id}/available-slots - Invalid input: amenity_id=%s, error=%v", amenityID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /amenities/{id}/available-slots - Failed to get slots: amenity_id=%s, date=%s, error=%v",
				amenityID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /amenities/{id}/available-slots - Slots retrieved successfully: amenity_id=%s, date=%s, mode=%s, slots_count=%d",
		amenityID, dateStr, mode, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
