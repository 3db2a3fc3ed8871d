package amenities

import (
	"context"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
)

// AmenityRepository интерфейс репозитория каталога объектов
type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	List(ctx context.Context, filter domain.AmenityFilter) ([]*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
