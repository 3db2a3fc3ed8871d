package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

func TestParseShift(t *testing.T) {
	shift, err := ParseShift("09:00-13:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), shift.Start)
	assert.Equal(t, types.TimeString("13:30"), shift.End)
	assert.Equal(t, "09:00-13:30", shift.String())

	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "09:00"},
		{"bad start", "9:00-13:00"},
		{"bad end", "09:00-25:00"},
		{"end before start", "13:00-09:00"},
		{"equal bounds", "09:00-09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShift(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestWeekdayFromTime(t *testing.T) {
	// 2026-09-07 is a Monday, 2026-09-13 a Sunday
	assert.Equal(t, Monday, WeekdayFromTime(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)))
}

func TestWeekSchedule_AllDaysOpen(t *testing.T) {
	open := DayShifts{IsOpen: true, Shifts: []Shift{{Start: "09:00", End: "18:00"}}}

	full := WeekSchedule{
		Monday: open, Tuesday: open, Wednesday: open, Thursday: open,
		Friday: open, Saturday: open, Sunday: open,
	}
	assert.True(t, full.AllDaysOpen())

	// One closed day breaks the invariant
	partial := full
	partial.Wednesday = DayShifts{}
	assert.False(t, partial.AllDaysOpen())

	// Open without shifts does not count either
	openEmpty := full
	openEmpty.Sunday = DayShifts{IsOpen: true}
	assert.False(t, openEmpty.AllDaysOpen())
}

func TestLegacySchedule_HasSlotsFor(t *testing.T) {
	legacy := LegacySchedule{
		Monday: LegacyDay{
			Open:           "08:00",
			Close:          "20:00",
			AvailableSlots: []types.TimeString{"08:00", "12:00"},
		},
		// Open hours without explicit slots do not count as a legacy day
		Tuesday: LegacyDay{Open: "08:00", Close: "20:00"},
	}

	assert.True(t, legacy.HasSlotsFor(Monday))
	assert.False(t, legacy.HasSlotsFor(Tuesday))
	assert.False(t, legacy.HasSlotsFor(Sunday))
}

func TestAmenity_IsAllDay(t *testing.T) {
	assert.True(t, (&Amenity{HoursLabel: AllDayHoursLabel}).IsAllDay())
	assert.False(t, (&Amenity{HoursLabel: "09:00 a 18:00"}).IsAllDay())
	assert.False(t, (&Amenity{}).IsAllDay())
}

func TestReservationDraft_Resets(t *testing.T) {
	draft := NewReservationDraft(7)
	assert.Equal(t, MinPeople, draft.People)
	assert.False(t, draft.HasDate())
	assert.False(t, draft.HasTime())

	draft.AmenityID = "pool"
	draft.AmenityName = "Piscina"
	draft.Date = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	draft.Time = "10:00"
	draft.People = 3
	draft.Notes = "nota"
	draft.IsInsured = true

	draft.ClearDetails()
	assert.Empty(t, draft.Notes)
	assert.False(t, draft.IsInsured)
	assert.True(t, draft.HasDate())
	assert.True(t, draft.HasTime())

	draft.ClearDateTime()
	assert.False(t, draft.HasDate())
	assert.False(t, draft.HasTime())
	assert.Equal(t, MinPeople, draft.People)
	assert.Empty(t, draft.AmenityID)
	assert.Equal(t, int64(7), draft.UserID)
}
