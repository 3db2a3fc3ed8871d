package domain

import "github.com/facilitae/FAC-AmenityService/pkg/types"

// ConsumerMode distinguishes the two consumers of slot generation
type ConsumerMode string

const (
	// ModeCustomer customer-facing booking flow; honors the legacy
	// schedule when present
	ModeCustomer ConsumerMode = "customer"

	// ModeFacilityAdmin facility-admin views; always uses the shift schedule
	ModeFacilityAdmin ConsumerMode = "facility-admin"
)

// IsValidMode returns true if m is one of the known consumer modes
func IsValidMode(m ConsumerMode) bool {
	return m == ModeCustomer || m == ModeFacilityAdmin
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking constants
const (
	// CutoffMinutes minimum lead time before a same-day slot becomes
	// unbookable. Fixed product-wide, not configurable per amenity.
	CutoffMinutes = 60

	// MinPeople lower bound of the people counter
	MinPeople = 1

	// MaxNotesLength максимальная длина заметок к бронированию
	MaxNotesLength = 500
)

// AllDayHoursLabel display-hours literal marking a round-the-clock
// amenity. Matched as a string; no structured flag exists.
const AllDayHoursLabel = "24 horas"

// FallbackSlots fixed hourly reference list 09:00..18:00 used when
// neither schedule representation yields candidates for a day, so a
// misconfigured amenity stays partially bookable instead of unbookable.
var FallbackSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// AllDaySlots two-hour grid 00:00..22:00 generated for "24 horas" amenities
var AllDaySlots = []types.TimeString{
	"00:00", "02:00", "04:00", "06:00", "08:00", "10:00",
	"12:00", "14:00", "16:00", "18:00", "20:00", "22:00",
}

// WeekdayLabels short display labels for reservation summaries.
// Display-only; never used for computation.
var WeekdayLabels = map[Weekday]string{
	Monday:    "Lun",
	Tuesday:   "Mar",
	Wednesday: "Mié",
	Thursday:  "Jue",
	Friday:    "Vie",
	Saturday:  "Sáb",
	Sunday:    "Dom",
}
