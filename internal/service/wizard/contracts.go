package wizard

import (
	"context"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/internal/integrations/reservationservice"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
)

// SlotsUseCase интерфейс use case получения слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// AmenityRepository интерфейс репозитория каталога объектов
type AmenityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
}

// ReservationSubmitter интерфейс клиента внешнего сервиса бронирований
type ReservationSubmitter interface {
	SubmitReservation(ctx context.Context, reservation *reservationservice.Reservation) (*reservationservice.SubmissionAck, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
