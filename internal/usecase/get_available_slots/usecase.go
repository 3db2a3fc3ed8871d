package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
)

// UseCase use case для получения слотов бронирования объекта
type UseCase struct {
	amenityRepo  AmenityRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(amenityRepo AmenityRepository, logger Logger) *UseCase {
	return &UseCase{
		amenityRepo:  amenityRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: amenity=%s, date=%s, mode=%s",
		req.AmenityID, req.Date.Format(domain.DateFormat), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект из каталога
	amenity, err := uc.amenityRepo.GetByID(ctx, req.AmenityID)
	if err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			uc.logger.Warn("GetAvailableSlots: amenity id=%s not found", req.AmenityID)
			return nil, ErrAmenityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get amenity id=%s: %v", req.AmenityID, err)
		return nil, fmt.Errorf("%w: failed to get amenity: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты
	slots := generateSlots(amenity, req.Date, now, req.Mode)

	uc.logger.Info("GetAvailableSlots: generated %d slots for amenity=%s, date=%s, mode=%s",
		len(slots), req.AmenityID, req.Date.Format(domain.DateFormat), req.Mode)

	return &Response{
		AmenityID: req.AmenityID,
		Date:      req.Date,
		Mode:      req.Mode,
		Slots:     slots,
	}, nil
}
