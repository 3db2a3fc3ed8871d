package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе объекта
	ErrInvalidStatus = errors.New("invalid amenity status")

	// ErrInvalidSchedule возвращается при некорректном расписании
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// Request модели

// AddOnInput доп. услуга в запросе
type AddOnInput struct {
	Enabled     bool    `json:"enabled"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// DayShiftsInput один день сменного расписания в запросе;
// смены в wire-форме "HH:MM-HH:MM"
type DayShiftsInput struct {
	IsOpen bool     `json:"isOpen"`
	Shifts []string `json:"shifts"`
}

// LegacyDayInput один день легаси-расписания в запросе
type LegacyDayInput struct {
	Open           string   `json:"open"`
	Close          string   `json:"close"`
	AvailableSlots []string `json:"availableSlots"`
}

// CreateAmenityRequest запрос на создание объекта
type CreateAmenityRequest struct {
	Name            string                    `json:"name"`
	Status          string                    `json:"status"`
	Capacity        int                       `json:"capacity"`
	HoursLabel      string                    `json:"hoursLabel"`
	WeeklyShifts    map[string]DayShiftsInput `json:"weeklyShifts"`
	LegacySchedule  map[string]LegacyDayInput `json:"legacySchedule,omitempty"`
	CleaningService *AddOnInput               `json:"cleaningService,omitempty"`
	Penalty         *AddOnInput               `json:"penalty,omitempty"`
}

// UpdateAmenityRequest запрос на частичное обновление объекта.
// nil-поля не изменяются.
type UpdateAmenityRequest struct {
	Name            *string                   `json:"name,omitempty"`
	Status          *string                   `json:"status,omitempty"`
	Capacity        *int                      `json:"capacity,omitempty"`
	HoursLabel      *string                   `json:"hoursLabel,omitempty"`
	WeeklyShifts    map[string]DayShiftsInput `json:"weeklyShifts,omitempty"`
	LegacySchedule  map[string]LegacyDayInput `json:"legacySchedule,omitempty"`
	CleaningService *AddOnInput               `json:"cleaningService,omitempty"`
	Penalty         *AddOnInput               `json:"penalty,omitempty"`
}

// Response модели

// AddOnResponse доп. услуга в ответе
type AddOnResponse struct {
	Enabled     bool    `json:"enabled"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// DayShiftsResponse один день сменного расписания в ответе
type DayShiftsResponse struct {
	IsOpen bool     `json:"isOpen"`
	Shifts []string `json:"shifts"`
}

// LegacyDayResponse один день легаси-расписания в ответе
type LegacyDayResponse struct {
	Open           string   `json:"open,omitempty"`
	Close          string   `json:"close,omitempty"`
	AvailableSlots []string `json:"availableSlots,omitempty"`
}

// AmenityResponse объект каталога в ответе
type AmenityResponse struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Status          string                       `json:"status"`
	Capacity        int                          `json:"capacity"`
	HoursLabel      string                       `json:"hoursLabel"`
	WeeklyShifts    map[string]DayShiftsResponse `json:"weeklyShifts"`
	LegacySchedule  map[string]LegacyDayResponse `json:"legacySchedule,omitempty"`
	CleaningService AddOnResponse                `json:"cleaningService"`
	Penalty         AddOnResponse                `json:"penalty"`
	CreatedAt       time.Time                    `json:"createdAt"`
	UpdatedAt       time.Time                    `json:"updatedAt"`
}

// AmenityListResponse список объектов каталога
type AmenityListResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
}

// Конвертация в domain

// ToDomainStatus конвертирует строку статуса в domain.AmenityStatus
func ToDomainStatus(s string) (domain.AmenityStatus, error) {
	status := domain.AmenityStatus(s)
	if !domain.IsValidStatus(status) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// ToDomainWeekSchedule конвертирует и валидирует сменное расписание.
// Инварианты: известные ключи дней; закрытый день без смен; каждая смена
// "HH:MM-HH:MM" с началом строго раньше конца.
func ToDomainWeekSchedule(input map[string]DayShiftsInput) (domain.WeekSchedule, error) {
	var week domain.WeekSchedule

	for key, day := range input {
		weekday := domain.Weekday(key)
		if !knownWeekday(weekday) {
			return week, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, key)
		}

		if !day.IsOpen && len(day.Shifts) > 0 {
			return week, fmt.Errorf("%w: %s is closed but has shifts", ErrInvalidSchedule, key)
		}

		shifts := make([]domain.Shift, 0, len(day.Shifts))
		for _, raw := range day.Shifts {
			shift, err := domain.ParseShift(raw)
			if err != nil {
				return week, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, key, err)
			}
			shifts = append(shifts, shift)
		}

		setDay(&week, weekday, domain.DayShifts{IsOpen: day.IsOpen, Shifts: shifts})
	}

	return week, nil
}

// ToDomainLegacySchedule конвертирует и валидирует легаси-расписание
func ToDomainLegacySchedule(input map[string]LegacyDayInput) (domain.LegacySchedule, error) {
	var legacy domain.LegacySchedule

	for key, day := range input {
		weekday := domain.Weekday(key)
		if !knownWeekday(weekday) {
			return legacy, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, key)
		}

		var converted domain.LegacyDay
		var err error

		if day.Open != "" {
			converted.Open, err = types.NewTimeStringFromString(day.Open)
			if err != nil {
				return legacy, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, key, err)
			}
		}
		if day.Close != "" {
			converted.Close, err = types.NewTimeStringFromString(day.Close)
			if err != nil {
				return legacy, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, key, err)
			}
		}

		converted.AvailableSlots = make([]types.TimeString, 0, len(day.AvailableSlots))
		for _, raw := range day.AvailableSlots {
			slot, err := types.NewTimeStringFromString(raw)
			if err != nil {
				return legacy, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, key, err)
			}
			converted.AvailableSlots = append(converted.AvailableSlots, slot)
		}

		setLegacyDay(&legacy, weekday, converted)
	}

	return legacy, nil
}

// ToDomainAddOn конвертирует доп. услугу; nil дает выключенную услугу
func ToDomainAddOn(input *AddOnInput) domain.AddOn {
	if input == nil {
		return domain.AddOn{}
	}
	return domain.AddOn{
		Enabled:     input.Enabled,
		Amount:      input.Amount,
		Description: input.Description,
	}
}

// Конвертация из domain

// FromDomainAmenity конвертирует domain.Amenity в response модель
func FromDomainAmenity(a *domain.Amenity) *AmenityResponse {
	resp := &AmenityResponse{
		ID:         a.ID,
		Name:       a.Name,
		Status:     string(a.Status),
		Capacity:   a.Capacity,
		HoursLabel: a.HoursLabel,
		WeeklyShifts: make(map[string]DayShiftsResponse, len(domain.Weekdays)),
		CleaningService: AddOnResponse(a.CleaningService),
		Penalty:         AddOnResponse(a.Penalty),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	for _, weekday := range domain.Weekdays {
		day := a.WeeklyShifts.ForDay(weekday)
		shifts := make([]string, 0, len(day.Shifts))
		for _, shift := range day.Shifts {
			shifts = append(shifts, shift.String())
		}
		resp.WeeklyShifts[string(weekday)] = DayShiftsResponse{IsOpen: day.IsOpen, Shifts: shifts}
	}

	legacy := make(map[string]LegacyDayResponse)
	for _, weekday := range domain.Weekdays {
		day := a.LegacySchedule.ForDay(weekday)
		if day.Open.IsZero() && day.Close.IsZero() && len(day.AvailableSlots) == 0 {
			continue
		}
		slots := make([]string, 0, len(day.AvailableSlots))
		for _, slot := range day.AvailableSlots {
			slots = append(slots, slot.String())
		}
		legacy[string(weekday)] = LegacyDayResponse{
			Open:           day.Open.String(),
			Close:          day.Close.String(),
			AvailableSlots: slots,
		}
	}
	if len(legacy) > 0 {
		resp.LegacySchedule = legacy
	}

	return resp
}

// FromDomainAmenityList конвертирует список объектов в response модель
func FromDomainAmenityList(amenities []*domain.Amenity) *AmenityListResponse {
	list := make([]AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		list = append(list, *FromDomainAmenity(a))
	}
	return &AmenityListResponse{Amenities: list}
}

func knownWeekday(day domain.Weekday) bool {
	for _, known := range domain.Weekdays {
		if known == day {
			return true
		}
	}
	return false
}

func setDay(week *domain.WeekSchedule, day domain.Weekday, value domain.DayShifts) {
	switch day {
	case domain.Monday:
		week.Monday = value
	case domain.Tuesday:
		week.Tuesday = value
	case domain.Wednesday:
		week.Wednesday = value
	case domain.Thursday:
		week.Thursday = value
	case domain.Friday:
		week.Friday = value
	case domain.Saturday:
		week.Saturday = value
	case domain.Sunday:
		week.Sunday = value
	}
}

func setLegacyDay(legacy *domain.LegacySchedule, day domain.Weekday, value domain.LegacyDay) {
	switch day {
	case domain.Monday:
		legacy.Monday = value
	case domain.Tuesday:
		legacy.Tuesday = value
	case domain.Wednesday:
		legacy.Wednesday = value
	case domain.Thursday:
		legacy.Thursday = value
	case domain.Friday:
		legacy.Friday = value
	case domain.Saturday:
		legacy.Saturday = value
	case domain.Sunday:
		legacy.Sunday = value
	}
}
