package amenities

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
	"github.com/facilitae/FAC-AmenityService/internal/service/amenities/models"
)

// Service сервис каталога объектов (поверхность администратора комплекса).
// Мастер бронирования читает каталог только на чтение; мутации проходят
// исключительно через этот сервис.
type Service struct {
	amenityRepo AmenityRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(amenityRepo AmenityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		amenityRepo: amenityRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает объект каталога
func (s *Service) Create(ctx context.Context, req *models.CreateAmenityRequest) (*models.AmenityResponse, error) {
	s.logger.Info("Create: creating amenity name=%q", req.Name)

	amenity, err := s.buildAmenity(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	amenity.ID = uuid.NewString()

	created, err := s.amenityRepo.Create(ctx, amenity)
	if err != nil {
		if errors.Is(err, amenityRepo.ErrDuplicateAmenity) {
			return nil, ErrDuplicateAmenity
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created amenity id=%s", created.ID)
	return models.FromDomainAmenity(created), nil
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AmenityResponse, error) {
	amenity, err := s.amenityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			s.logger.Warn("GetByID: amenity id=%s not found", id)
			return nil, ErrAmenityNotFound
		}
		s.logger.Error("GetByID: repository error for amenity id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAmenity(amenity), nil
}

// List получает список объектов с опциональной фильтрацией по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.AmenityListResponse, error) {
	var filter domain.AmenityFilter

	if status != nil {
		domainStatus, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &domainStatus
	}

	amenities, err := s.amenityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d amenities", len(amenities))
	return models.FromDomainAmenityList(amenities), nil
}

// Update частично обновляет объект каталога.
// Read-modify-write выполняется в сериализуемой транзакции, чтобы два
// администратора не затерли правки друг друга.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateAmenityRequest) (*models.AmenityResponse, error) {
	s.logger.Info("Update: updating amenity id=%s", id)

	var result *domain.Amenity

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		amenity, err := s.amenityRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
				return ErrAmenityNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if err := s.applyUpdate(amenity, req); err != nil {
			return err
		}

		updated, err := s.amenityRepo.Update(txCtx, amenity)
		if err != nil {
			if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
				return ErrAmenityNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrAmenityNotFound) && !errors.Is(err, ErrInvalidInput) {
			s.logger.Error("Update: failed for amenity id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated amenity id=%s", id)
	return models.FromDomainAmenity(result), nil
}

// Delete удаляет объект из каталога
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting amenity id=%s", id)

	if err := s.amenityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			s.logger.Warn("Delete: amenity id=%s not found", id)
			return ErrAmenityNotFound
		}
		s.logger.Error("Delete: repository error for amenity id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted amenity id=%s", id)
	return nil
}

// buildAmenity собирает и валидирует domain.Amenity из запроса на создание
func (s *Service) buildAmenity(req *models.CreateAmenityRequest) (*domain.Amenity, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	weeklyShifts, err := models.ToDomainWeekSchedule(req.WeeklyShifts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	legacySchedule, err := models.ToDomainLegacySchedule(req.LegacySchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &domain.Amenity{
		Name:            req.Name,
		Status:          status,
		Capacity:        req.Capacity,
		HoursLabel:      req.HoursLabel,
		WeeklyShifts:    weeklyShifts,
		LegacySchedule:  legacySchedule,
		CleaningService: models.ToDomainAddOn(req.CleaningService),
		Penalty:         models.ToDomainAddOn(req.Penalty),
	}, nil
}

// applyUpdate применяет непустые поля запроса к объекту
func (s *Service) applyUpdate(amenity *domain.Amenity, req *models.UpdateAmenityRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		amenity.Name = *req.Name
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		amenity.Status = status
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
		}
		amenity.Capacity = *req.Capacity
	}

	if req.HoursLabel != nil {
		amenity.HoursLabel = *req.HoursLabel
	}

	if req.WeeklyShifts != nil {
		weeklyShifts, err := models.ToDomainWeekSchedule(req.WeeklyShifts)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		amenity.WeeklyShifts = weeklyShifts
	}

	if req.LegacySchedule != nil {
		legacySchedule, err := models.ToDomainLegacySchedule(req.LegacySchedule)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		amenity.LegacySchedule = legacySchedule
	}

	if req.CleaningService != nil {
		amenity.CleaningService = models.ToDomainAddOn(req.CleaningService)
	}
	if req.Penalty != nil {
		amenity.Penalty = models.ToDomainAddOn(req.Penalty)
	}

	return nil
}
