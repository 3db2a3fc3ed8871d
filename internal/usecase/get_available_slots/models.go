package get_available_slots

import (
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	AmenityID string              // ID объекта
	Date      time.Time           // Выбранная дата (без времени)
	Mode      domain.ConsumerMode // Режим потребителя (customer / facility-admin)
}

// Response модель ответа со списком слотов
type Response struct {
	AmenityID string              // ID объекта
	Date      time.Time           // Дата, на которую запрашивались слоты
	Mode      domain.ConsumerMode // Режим потребителя
	Slots     []domain.TimeSlot   // Упорядоченный список слотов
}
