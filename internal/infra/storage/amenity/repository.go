package amenity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/pkg/dbmetrics"
	"github.com/facilitae/FAC-AmenityService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

// amenityColumns колонки таблицы amenities в порядке сканирования
var amenityColumns = []string{
	"id",
	"name",
	"status",
	"capacity",
	"hours_label",
	"weekly_shifts",
	"legacy_schedule",
	"cleaning_enabled",
	"cleaning_amount",
	"cleaning_description",
	"penalty_enabled",
	"penalty_amount",
	"penalty_description",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога объектов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает объект в каталоге
func (r *Repository) Create(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyShifts, legacySchedule, err := marshalSchedules(a)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("amenities").
		Columns(
			"id",
			"name",
			"status",
			"capacity",
			"hours_label",
			"weekly_shifts",
			"legacy_schedule",
			"cleaning_enabled",
			"cleaning_amount",
			"cleaning_description",
			"penalty_enabled",
			"penalty_amount",
			"penalty_description",
		).
		Values(
			a.ID,
			a.Name,
			a.Status,
			a.Capacity,
			a.HoursLabel,
			weeklyShifts,
			legacySchedule,
			a.CleaningService.Enabled,
			a.CleaningService.Amount,
			a.CleaningService.Description,
			a.Penalty.Enabled,
			a.Penalty.Amount,
			a.Penalty.Description,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateAmenity
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(amenityColumns...).
		From("amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	amenity, err := scanAmenity(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAmenityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan amenity: %v", ErrScanRow, err)
	}

	return amenity, nil
}

// List получает список объектов каталога с опциональной фильтрацией по статусу
func (r *Repository) List(ctx context.Context, filter domain.AmenityFilter) ([]*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(amenityColumns...).
		From("amenities").
		OrderBy("name ASC")

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var amenities []*domain.Amenity
	for rows.Next() {
		amenity, err := scanAmenity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan amenity: %v", ErrScanRow, err)
		}
		amenities = append(amenities, amenity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return amenities, nil
}

// Update обновляет объект каталога
func (r *Repository) Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyShifts, legacySchedule, err := marshalSchedules(a)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("amenities").
		Set("name", a.Name).
		Set("status", a.Status).
		Set("capacity", a.Capacity).
		Set("hours_label", a.HoursLabel).
		Set("weekly_shifts", weeklyShifts).
		Set("legacy_schedule", legacySchedule).
		Set("cleaning_enabled", a.CleaningService.Enabled).
		Set("cleaning_amount", a.CleaningService.Amount).
		Set("cleaning_description", a.CleaningService.Description).
		Set("penalty_enabled", a.Penalty.Enabled).
		Set("penalty_amount", a.Penalty.Amount).
		Set("penalty_description", a.Penalty.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAmenityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// Delete удаляет объект из каталога
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAmenityNotFound
	}

	return nil
}

// marshalSchedules сериализует оба представления расписания в JSONB
func marshalSchedules(a *domain.Amenity) ([]byte, []byte, error) {
	weeklyShifts, err := json.Marshal(a.WeeklyShifts)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: weekly shifts: %v", ErrMarshalSchedule, err)
	}

	legacySchedule, err := json.Marshal(a.LegacySchedule)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: legacy schedule: %v", ErrMarshalSchedule, err)
	}

	return weeklyShifts, legacySchedule, nil
}

// scanAmenity сканирует строку таблицы amenities в domain.Amenity
func scanAmenity(scan func(dest ...interface{}) error) (*domain.Amenity, error) {
	var (
		amenity        domain.Amenity
		weeklyShifts   []byte
		legacySchedule []byte
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err := scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.Status,
		&amenity.Capacity,
		&amenity.HoursLabel,
		&weeklyShifts,
		&legacySchedule,
		&amenity.CleaningService.Enabled,
		&amenity.CleaningService.Amount,
		&amenity.CleaningService.Description,
		&amenity.Penalty.Enabled,
		&amenity.Penalty.Amount,
		&amenity.Penalty.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(weeklyShifts) > 0 {
		if err := json.Unmarshal(weeklyShifts, &amenity.WeeklyShifts); err != nil {
			return nil, fmt.Errorf("%w: weekly shifts: %v", ErrUnmarshalSchedule, err)
		}
	}
	if len(legacySchedule) > 0 {
		if err := json.Unmarshal(legacySchedule, &amenity.LegacySchedule); err != nil {
			return nil, fmt.Errorf("%w: legacy schedule: %v", ErrUnmarshalSchedule, err)
		}
	}

	amenity.CreatedAt = createdAt.Time
	amenity.UpdatedAt = updatedAt.Time

	return &amenity, nil
}
