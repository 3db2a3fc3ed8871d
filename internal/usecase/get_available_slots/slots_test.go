package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	amenity *domain.Amenity
	err     error
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.amenity, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newUseCase(amenity *domain.Amenity, now time.Time) *UseCase {
	return NewUseCase(&stubRepo{amenity: amenity}, stubLogger{}).
		WithTimeProvider(fixedTime{now: now})
}

func openDay(starts ...string) domain.DayShifts {
	shifts := make([]domain.Shift, 0, len(starts))
	for _, start := range starts {
		shifts = append(shifts, domain.Shift{
			Start: types.TimeString(start),
			End:   "23:00",
		})
	}
	return domain.DayShifts{IsOpen: true, Shifts: shifts}
}

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time.String())
	}
	return out
}

func slotStatuses(slots []domain.TimeSlot) map[string]domain.SlotStatus {
	out := make(map[string]domain.SlotStatus, len(slots))
	for _, s := range slots {
		out[s.Time.String()] = s.Status
	}
	return out
}

// date helper: local midnight of the given day
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func TestExecute_AllDaysOpenUnionIsWeekdayIndependent(t *testing.T) {
	// Every day open: Monday starts at 09:00, the rest at 14:00.
	// Candidates must be the union of all start times regardless of
	// which weekday is requested.
	week := domain.WeekSchedule{
		Monday:    openDay("09:00"),
		Tuesday:   openDay("14:00"),
		Wednesday: openDay("14:00"),
		Thursday:  openDay("14:00"),
		Friday:    openDay("14:00"),
		Saturday:  openDay("14:00"),
		Sunday:    openDay("14:00"),
	}
	amenity := &domain.Amenity{ID: "gym", Status: domain.StatusAvailable, WeeklyShifts: week}

	now := day(2026, time.September, 1).Add(5 * time.Hour) // far from cutoff
	uc := newUseCase(amenity, now)

	// Monday 2026-09-07 and Friday 2026-09-11 must yield identical lists
	for _, date := range []time.Time{day(2026, time.September, 7), day(2026, time.September, 11)} {
		resp, err := uc.Execute(context.Background(), &Request{
			AmenityID: "gym",
			Date:      date,
			Mode:      domain.ModeCustomer,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "14:00"}, slotTimes(resp.Slots))
	}
}

func TestExecute_SingleDayScheduleUsesThatDayOnly(t *testing.T) {
	// Not all days open: the requested weekday's own shifts are used
	week := domain.WeekSchedule{
		Monday: openDay("06:00", "08:00"),
	}
	amenity := &domain.Amenity{ID: "pool", Status: domain.StatusAvailable, WeeklyShifts: week}

	now := day(2026, time.August, 1)
	uc := newUseCase(amenity, now)

	// 2026-09-07 is a Monday
	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "pool",
		Date:      day(2026, time.September, 7),
		Mode:      domain.ModeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"06:00", "08:00"}, slotTimes(resp.Slots))
}

func TestExecute_EmptyScheduleFallsBackToHourlyGrid(t *testing.T) {
	amenity := &domain.Amenity{ID: "lounge", Status: domain.StatusAvailable}

	now := day(2026, time.August, 1)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "lounge",
		Date:      day(2026, time.September, 8),
		Mode:      domain.ModeCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}, slotTimes(resp.Slots))

	// Future date: everything available
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable())
	}
}

func TestExecute_AllDayAmenityUsesTwoHourGrid(t *testing.T) {
	// "24 horas" label wins over any weekly schedule in customer mode
	amenity := &domain.Amenity{
		ID:           "parking",
		Status:       domain.StatusAvailable,
		HoursLabel:   domain.AllDayHoursLabel,
		WeeklyShifts: domain.WeekSchedule{Monday: openDay("09:00")},
	}

	now := day(2026, time.August, 1)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "parking",
		Date:      day(2026, time.September, 7),
		Mode:      domain.ModeCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00:00", "02:00", "04:00", "06:00", "08:00", "10:00",
		"12:00", "14:00", "16:00", "18:00", "20:00", "22:00",
	}, slotTimes(resp.Slots))
}

func TestExecute_AllDayLabelIgnoredInAdminMode(t *testing.T) {
	amenity := &domain.Amenity{
		ID:           "parking",
		Status:       domain.StatusAvailable,
		HoursLabel:   domain.AllDayHoursLabel,
		WeeklyShifts: domain.WeekSchedule{Monday: openDay("09:00")},
	}

	now := day(2026, time.August, 1)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "parking",
		Date:      day(2026, time.September, 7), // Monday
		Mode:      domain.ModeFacilityAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slotTimes(resp.Slots))
}

func TestExecute_LegacySchedulePrecedenceCustomerModeOnly(t *testing.T) {
	amenity := &domain.Amenity{
		ID:     "salon",
		Status: domain.StatusAvailable,
		WeeklyShifts: domain.WeekSchedule{
			Monday: openDay("10:00"),
		},
		LegacySchedule: domain.LegacySchedule{
			Monday: domain.LegacyDay{
				Open:           "08:00",
				Close:          "20:00",
				AvailableSlots: []types.TimeString{"08:00", "12:00"},
			},
		},
	}

	now := day(2026, time.August, 1)
	uc := newUseCase(amenity, now)
	monday := day(2026, time.September, 7)

	// Customer mode: legacy day wins
	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "salon", Date: monday, Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "12:00"}, slotTimes(resp.Slots))

	// Admin mode: shift schedule wins
	resp, err = uc.Execute(context.Background(), &Request{
		AmenityID: "salon", Date: monday, Mode: domain.ModeFacilityAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slotTimes(resp.Slots))

	// Legacy day without slots on Tuesday: shift schedule empty there,
	// fallback grid applies
	resp, err = uc.Execute(context.Background(), &Request{
		AmenityID: "salon", Date: day(2026, time.September, 8), Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 10)
}

func TestExecute_SameDayCutoffBoundary(t *testing.T) {
	// now = 09:30, cutoff instant = 10:30. Slots strictly before 10:30
	// are unavailable, 10:30 itself is available.
	week := domain.WeekSchedule{
		Monday: openDay("09:00", "10:00", "10:30", "11:00"),
	}
	amenity := &domain.Amenity{ID: "court", Status: domain.StatusAvailable, WeeklyShifts: week}

	monday := day(2026, time.September, 7)
	now := monday.Add(9*time.Hour + 30*time.Minute)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "court", Date: monday, Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)

	statuses := slotStatuses(resp.Slots)
	assert.Equal(t, domain.SlotUnavailable, statuses["09:00"])
	assert.Equal(t, domain.SlotUnavailable, statuses["10:00"])
	assert.Equal(t, domain.SlotAvailable, statuses["10:30"])
	assert.Equal(t, domain.SlotAvailable, statuses["11:00"])
}

func TestExecute_FutureDateImmuneToCutoff(t *testing.T) {
	week := domain.WeekSchedule{
		Tuesday: openDay("00:00"),
	}
	amenity := &domain.Amenity{ID: "court", Status: domain.StatusAvailable, WeeklyShifts: week}

	// Late Monday evening; Tuesday 00:00 is within the next hour but on
	// another calendar day, so the cutoff does not apply
	now := day(2026, time.September, 7).Add(23*time.Hour + 50*time.Minute)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "court", Date: day(2026, time.September, 8), Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].IsAvailable())
}

func TestExecute_PoolScenario(t *testing.T) {
	// Pool open Monday 06:00 and 08:00 only. At Monday 07:00 the 06:00
	// slot is gone (cutoff), 08:00 still bookable. Tuesday has no
	// schedule, so the fallback grid applies, all available.
	week := domain.WeekSchedule{
		Monday: openDay("06:00", "08:00"),
	}
	amenity := &domain.Amenity{ID: "pool", Status: domain.StatusAvailable, Capacity: 10, WeeklyShifts: week}

	monday := day(2026, time.September, 7)
	now := monday.Add(7 * time.Hour)
	uc := newUseCase(amenity, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "pool", Date: monday, Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)

	statuses := slotStatuses(resp.Slots)
	assert.Equal(t, domain.SlotUnavailable, statuses["06:00"])
	assert.Equal(t, domain.SlotAvailable, statuses["08:00"])

	resp, err = uc.Execute(context.Background(), &Request{
		AmenityID: "pool", Date: day(2026, time.September, 8), Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 10)
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable())
	}
}

func TestExecute_DeduplicatesUnionCandidates(t *testing.T) {
	// All days open with overlapping start times: each time appears once
	week := domain.WeekSchedule{
		Monday:    openDay("09:00", "14:00"),
		Tuesday:   openDay("09:00"),
		Wednesday: openDay("09:00"),
		Thursday:  openDay("09:00"),
		Friday:    openDay("09:00"),
		Saturday:  openDay("14:00"),
		Sunday:    openDay("14:00"),
	}
	amenity := &domain.Amenity{ID: "gym", Status: domain.StatusAvailable, WeeklyShifts: week}

	uc := newUseCase(amenity, day(2026, time.August, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		AmenityID: "gym", Date: day(2026, time.September, 9), Mode: domain.ModeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, slotTimes(resp.Slots))
}

func TestExecute_Deterministic(t *testing.T) {
	week := domain.WeekSchedule{
		Monday:    openDay("18:00", "09:00"),
		Tuesday:   openDay("12:00"),
		Wednesday: openDay("12:00"),
		Thursday:  openDay("12:00"),
		Friday:    openDay("12:00"),
		Saturday:  openDay("12:00"),
		Sunday:    openDay("12:00"),
	}
	amenity := &domain.Amenity{ID: "gym", Status: domain.StatusAvailable, WeeklyShifts: week}
	uc := newUseCase(amenity, day(2026, time.August, 1))

	req := &Request{AmenityID: "gym", Date: day(2026, time.September, 10), Mode: domain.ModeCustomer}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		next, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first.Slots, next.Slots)
	}

	// Sorted ascending
	assert.Equal(t, []string{"09:00", "12:00", "18:00"}, slotTimes(first.Slots))
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&domain.Amenity{ID: "gym"}, time.Now())

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing amenity ID", &Request{Date: day(2026, time.September, 7), Mode: domain.ModeCustomer}},
		{"zero date", &Request{AmenityID: "gym", Mode: domain.ModeCustomer}},
		{"unknown mode", &Request{AmenityID: "gym", Date: day(2026, time.September, 7), Mode: "robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AmenityNotFound(t *testing.T) {
	uc := NewUseCase(&stubRepo{err: amenityRepo.ErrAmenityNotFound}, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AmenityID: "ghost",
		Date:      day(2026, time.September, 7),
		Mode:      domain.ModeCustomer,
	})
	assert.ErrorIs(t, err, ErrAmenityNotFound)
}
