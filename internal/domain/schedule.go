package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

var (
	// ErrInvalidShift is returned for malformed "HH:MM-HH:MM" shift strings
	ErrInvalidShift = errors.New("invalid shift format, expected HH:MM-HH:MM")

	// ErrShiftOrder is returned when a shift does not start strictly before it ends
	ErrShiftOrder = errors.New("shift start must be strictly before shift end")
)

// Weekday is a named day key of the weekly schedule
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays перечисление дней недели в порядке monday..sunday
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayFromTime maps time.Weekday (0=Sunday..6=Saturday) to the named key
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Shift is a contiguous time range within a day during which an amenity
// accepts bookings. Parsed once from its "HH:MM-HH:MM" wire form; the
// start < end invariant is enforced at parse time.
type Shift struct {
	Start types.TimeString
	End   types.TimeString
}

// ParseShift parses and validates a "HH:MM-HH:MM" string
func ParseShift(s string) (Shift, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Shift{}, fmt.Errorf("%w: %q", ErrInvalidShift, s)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return Shift{}, fmt.Errorf("%w: %q", ErrInvalidShift, s)
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return Shift{}, fmt.Errorf("%w: %q", ErrInvalidShift, s)
	}

	if !start.IsBefore(end) {
		return Shift{}, fmt.Errorf("%w: %q", ErrShiftOrder, s)
	}

	return Shift{Start: start, End: end}, nil
}

// String returns the "HH:MM-HH:MM" wire form
func (s Shift) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// MarshalJSON serializes the shift to its "HH:MM-HH:MM" wire form
func (s Shift) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the shift from its "HH:MM-HH:MM" wire form
func (s *Shift) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseShift(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DayShifts describes one weekday of the shift-based schedule.
// Invariant: IsOpen == false implies an empty Shifts list.
type DayShifts struct {
	IsOpen bool    `json:"isOpen"`
	Shifts []Shift `json:"shifts"`
}

// HasShifts returns true when the day is open and carries at least one shift
func (d DayShifts) HasShifts() bool {
	return d.IsOpen && len(d.Shifts) > 0
}

// WeekSchedule is the shift-based recurring weekly availability
type WeekSchedule struct {
	Monday    DayShifts `json:"monday"`
	Tuesday   DayShifts `json:"tuesday"`
	Wednesday DayShifts `json:"wednesday"`
	Thursday  DayShifts `json:"thursday"`
	Friday    DayShifts `json:"friday"`
	Saturday  DayShifts `json:"saturday"`
	Sunday    DayShifts `json:"sunday"`
}

// ForDay returns the schedule of the given weekday
func (w WeekSchedule) ForDay(day Weekday) DayShifts {
	switch day {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// AllDaysOpen returns true when every weekday is open with a non-empty
// shift list. Amenities in this configuration are treated as "open every
// day, same hours" by slot generation.
func (w WeekSchedule) AllDaysOpen() bool {
	for _, day := range Weekdays {
		if !w.ForDay(day).HasShifts() {
			return false
		}
	}
	return true
}

// LegacyDay is one weekday of the legacy fixed schedule: open/close hours
// plus an explicit ordered list of bookable start times
type LegacyDay struct {
	Open           types.TimeString   `json:"open"`
	Close          types.TimeString   `json:"close"`
	AvailableSlots []types.TimeString `json:"availableSlots"`
}

// LegacySchedule is the pre-shift-model fixed schedule. The zero value
// means the amenity has no legacy schedule at all.
type LegacySchedule struct {
	Monday    LegacyDay `json:"monday"`
	Tuesday   LegacyDay `json:"tuesday"`
	Wednesday LegacyDay `json:"wednesday"`
	Thursday  LegacyDay `json:"thursday"`
	Friday    LegacyDay `json:"friday"`
	Saturday  LegacyDay `json:"saturday"`
	Sunday    LegacyDay `json:"sunday"`
}

// ForDay returns the legacy schedule of the given weekday
func (l LegacySchedule) ForDay(day Weekday) LegacyDay {
	switch day {
	case Monday:
		return l.Monday
	case Tuesday:
		return l.Tuesday
	case Wednesday:
		return l.Wednesday
	case Thursday:
		return l.Thursday
	case Friday:
		return l.Friday
	case Saturday:
		return l.Saturday
	default:
		return l.Sunday
	}
}

// HasSlotsFor returns true when the legacy schedule carries explicit
// slots for the given weekday. A non-empty legacy day takes precedence
// over the shift schedule for customer-facing slot generation.
func (l LegacySchedule) HasSlotsFor(day Weekday) bool {
	return len(l.ForDay(day).AvailableSlots) > 0
}
