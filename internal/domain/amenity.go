package domain

import "time"

// AmenityStatus represents the operational status of an amenity
type AmenityStatus string

const (
	StatusAvailable   AmenityStatus = "available"
	StatusOccupied    AmenityStatus = "occupied"
	StatusMaintenance AmenityStatus = "maintenance"
	StatusDisabled    AmenityStatus = "disabled"
)

// ValidStatuses список допустимых статусов объекта
var ValidStatuses = []AmenityStatus{
	StatusAvailable,
	StatusOccupied,
	StatusMaintenance,
	StatusDisabled,
}

// IsValidStatus returns true if s is one of the known amenity statuses
func IsValidStatus(s AmenityStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// AddOn is an advisory add-on attached to an amenity (cleaning service,
// penalty disclosure). It never affects slot availability.
type AddOn struct {
	Enabled     bool    `json:"enabled"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Amenity is a shared bookable facility (pool, gym, parking, coworking
// room, cafeteria, event hall) belonging to a residential complex.
//
// Two schedule representations coexist:
//   - WeeklyShifts: the current shift-based weekly schedule.
//   - LegacySchedule: the older fixed open/close + explicit slot list,
//     kept for amenities authored before the shift model. When a day of
//     the legacy schedule carries slots, it wins for customer-facing
//     slot generation.
type Amenity struct {
	ID       string
	Name     string
	Status   AmenityStatus
	Capacity int

	// HoursLabel is the human-readable operating hours shown in listings,
	// e.g. "09:00 - 18:00" or the literal "24 horas".
	HoursLabel string

	WeeklyShifts   WeekSchedule
	LegacySchedule LegacySchedule

	CleaningService AddOn
	Penalty         AddOn

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSelectable returns true if the amenity can be picked for a new
// reservation in the wizard's amenity pool
func (a *Amenity) IsSelectable() bool {
	return a.Status == StatusAvailable
}

// AmenityFilter фильтр для выборки объектов из каталога
type AmenityFilter struct {
	Status *AmenityStatus // Фильтр по статусу (опционально)
}

// IsAllDay returns true for the "24 horas" display-hours special case.
// There is no structured flag for round-the-clock amenities; the label
// itself is the marker.
func (a *Amenity) IsAllDay() bool {
	return a.HoursLabel == AllDayHoursLabel
}
