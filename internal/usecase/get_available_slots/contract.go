package get_available_slots

import (
	"context"
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
)

// AmenityRepository интерфейс репозитория каталога объектов
type AmenityRepository interface {
	// GetByID получает объект по ID
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
