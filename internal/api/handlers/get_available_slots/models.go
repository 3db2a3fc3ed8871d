package get_available_slots

import (
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AmenityID string          `json:"amenityId"`
	Date      string          `json:"date"`
	Mode      string          `json:"mode"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:   slot.Time.String(),
			Status: string(slot.Status),
		}
	}

	return &AvailableSlotsResponse{
		AmenityID: resp.AmenityID,
		Date:      resp.Date.Format(domain.DateFormat),
		Mode:      string(resp.Mode),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(amenityID, dateStr, mode string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		AmenityID: amenityID,
		Date:      date,
		Mode:      domain.ConsumerMode(mode),
	}, nil
}
