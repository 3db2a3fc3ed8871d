package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
	"github.com/facilitae/FAC-AmenityService/internal/integrations/reservationservice"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
	"github.com/facilitae/FAC-AmenityService/pkg/ptr"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubSlots struct {
	slots []domain.TimeSlot
	err   error
}

func (s *stubSlots) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		AmenityID: req.AmenityID,
		Date:      req.Date,
		Mode:      req.Mode,
		Slots:     s.slots,
	}, nil
}

type stubAmenities struct {
	amenities map[string]*domain.Amenity
}

func (s *stubAmenities) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	amenity, ok := s.amenities[id]
	if !ok {
		return nil, amenityRepo.ErrAmenityNotFound
	}
	return amenity, nil
}

type stubSubmitter struct {
	err   error
	calls int
	last  *reservationservice.Reservation
}

func (s *stubSubmitter) SubmitReservation(ctx context.Context, r *reservationservice.Reservation) (*reservationservice.SubmissionAck, error) {
	s.calls++
	s.last = r
	if s.err != nil {
		return nil, s.err
	}
	return &reservationservice.SubmissionAck{ReservationID: "res-1", Status: "confirmed"}, nil
}

func testAmenity() *domain.Amenity {
	return &domain.Amenity{
		ID:       "pool",
		Name:     "Piscina",
		Status:   domain.StatusAvailable,
		Capacity: 4,
		CleaningService: domain.AddOn{
			Enabled: true, Amount: 150, Description: "Limpieza obligatoria",
		},
	}
}

func availableSlots(times ...string) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(times))
	for _, t := range times {
		slots = append(slots, domain.TimeSlot{Time: types.TimeString(t), Status: domain.SlotAvailable})
	}
	return slots
}

func newTestService(slots []domain.TimeSlot, submitter *stubSubmitter) *Service {
	return NewService(
		&stubSlots{slots: slots},
		&stubAmenities{amenities: map[string]*domain.Amenity{"pool": testAmenity()}},
		submitter,
		stubLogger{},
	)
}

// advance walks a fresh session to the details step
func advance(t *testing.T, svc *Service, date time.Time) string {
	t.Helper()

	view := svc.Start(42)
	sessionID := view.SessionID

	_, err := svc.SelectAmenity(context.Background(), sessionID, "pool", false)
	require.NoError(t, err)

	_, err = svc.SelectDate(context.Background(), sessionID, date)
	require.NoError(t, err)

	_, err = svc.SelectTime(sessionID, "10:00")
	require.NoError(t, err)

	return sessionID
}

func TestStart_OpensEmptySession(t *testing.T) {
	svc := newTestService(nil, &stubSubmitter{})

	view := svc.Start(42)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, StepAmenitySelection, view.Step)
	assert.Equal(t, domain.MinPeople, view.Draft.People)
	assert.Empty(t, view.Draft.AmenityID)
}

func TestSelectAmenity_Transitions(t *testing.T) {
	svc := newTestService(nil, &stubSubmitter{})
	view := svc.Start(42)

	result, err := svc.SelectAmenity(context.Background(), view.SessionID, "pool", false)
	require.NoError(t, err)
	assert.Equal(t, StepDateTimeSelection, result.Step)
	assert.Equal(t, "pool", result.Draft.AmenityID)
	assert.Equal(t, "Piscina", result.Draft.AmenityName)
	assert.Equal(t, 4, result.Capacity)

	// Repeating the selection at the wrong step is refused
	_, err = svc.SelectAmenity(context.Background(), view.SessionID, "pool", false)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestSelectAmenity_GuardsStatus(t *testing.T) {
	amenity := testAmenity()
	amenity.Status = domain.StatusMaintenance
	svc := NewService(
		&stubSlots{},
		&stubAmenities{amenities: map[string]*domain.Amenity{"pool": amenity}},
		&stubSubmitter{},
		stubLogger{},
	)
	view := svc.Start(42)

	_, err := svc.SelectAmenity(context.Background(), view.SessionID, "pool", false)
	assert.ErrorIs(t, err, ErrAmenityNotSelectable)

	// Rebook path bypasses the status guard
	result, err := svc.SelectAmenity(context.Background(), view.SessionID, "pool", true)
	require.NoError(t, err)
	assert.Equal(t, StepDateTimeSelection, result.Step)
}

func TestSelectAmenity_NotFound(t *testing.T) {
	svc := newTestService(nil, &stubSubmitter{})
	view := svc.Start(42)

	_, err := svc.SelectAmenity(context.Background(), view.SessionID, "ghost", false)
	assert.ErrorIs(t, err, ErrAmenityNotFound)
}

func TestSelectDate_RefreshesSlots(t *testing.T) {
	svc := newTestService(availableSlots("10:00", "12:00"), &stubSubmitter{})
	view := svc.Start(42)
	sessionID := view.SessionID

	_, err := svc.SelectAmenity(context.Background(), sessionID, "pool", false)
	require.NoError(t, err)

	result, err := svc.SelectDate(context.Background(), sessionID, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, result.Slots, 2)
	assert.Equal(t, "2026-09-07", result.Draft.Date)
}

func TestSelectDate_DiscardsStaleTime(t *testing.T) {
	slots := &stubSlots{slots: availableSlots("10:00", "12:00")}
	svc := NewService(
		slots,
		&stubAmenities{amenities: map[string]*domain.Amenity{"pool": testAmenity()}},
		&stubSubmitter{},
		stubLogger{},
	)

	view := svc.Start(42)
	sessionID := view.SessionID
	_, err := svc.SelectAmenity(context.Background(), sessionID, "pool", false)
	require.NoError(t, err)
	_, err = svc.SelectDate(context.Background(), sessionID, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	_, err = svc.SelectTime(sessionID, "10:00")
	require.NoError(t, err)

	// Back to the datetime step, then choose a date where 10:00 no
	// longer exists: the chosen time is silently dropped
	_, err = svc.Back(sessionID)
	require.NoError(t, err)
	slots.slots = availableSlots("14:00")

	result, err := svc.SelectDate(context.Background(), sessionID, time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Empty(t, result.Draft.Time)
}

func TestSelectTime_Guards(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	view := svc.Start(42)
	sessionID := view.SessionID

	_, err := svc.SelectAmenity(context.Background(), sessionID, "pool", false)
	require.NoError(t, err)

	// Date not chosen yet
	_, err = svc.SelectTime(sessionID, "10:00")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = svc.SelectDate(context.Background(), sessionID, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	// Slot missing from the offered list
	_, err = svc.SelectTime(sessionID, "23:00")
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	result, err := svc.SelectTime(sessionID, "10:00")
	require.NoError(t, err)
	assert.Equal(t, StepDetails, result.Step)
	assert.Equal(t, "10:00", result.Draft.Time)
}

func TestSelectTime_UnavailableSlotRejected(t *testing.T) {
	slots := []domain.TimeSlot{
		{Time: "08:00", Status: domain.SlotUnavailable},
		{Time: "10:00", Status: domain.SlotAvailable},
	}
	svc := newTestService(slots, &stubSubmitter{})
	view := svc.Start(42)
	sessionID := view.SessionID

	_, err := svc.SelectAmenity(context.Background(), sessionID, "pool", false)
	require.NoError(t, err)
	_, err = svc.SelectDate(context.Background(), sessionID, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	_, err = svc.SelectTime(sessionID, "08:00")
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestSetDetails_PeopleBounds(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	sessionID := advance(t, svc, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))

	// Absolute value outside [1, capacity] is an error
	_, err := svc.SetDetails(sessionID, &DetailsRequest{People: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrPeopleOutOfRange)
	_, err = svc.SetDetails(sessionID, &DetailsRequest{People: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrPeopleOutOfRange)

	result, err := svc.SetDetails(sessionID, &DetailsRequest{People: ptr.Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Draft.People)

	// Increment past capacity is a silent no-op
	result, err = svc.SetDetails(sessionID, &DetailsRequest{PeopleDelta: ptr.Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Draft.People)

	result, err = svc.SetDetails(sessionID, &DetailsRequest{PeopleDelta: ptr.Ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Draft.People)
}

func TestSetDetails_NotesAndInsurance(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	sessionID := advance(t, svc, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))

	result, err := svc.SetDetails(sessionID, &DetailsRequest{
		Notes:     ptr.Ptr("cumpleaños"),
		IsInsured: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "cumpleaños", result.Draft.Notes)
	assert.True(t, result.Draft.IsInsured)

	// Add-on disclosures visible at the details step
	require.Len(t, result.AddOns, 1)
	assert.Equal(t, AddOnCleaningService, result.AddOns[0].Kind)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.SetDetails(sessionID, &DetailsRequest{Notes: ptr.Ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBack_ResetRules(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	sessionID := advance(t, svc, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))

	_, err := svc.SetDetails(sessionID, &DetailsRequest{
		Notes:     ptr.Ptr("nota"),
		IsInsured: ptr.Ptr(true),
	})
	require.NoError(t, err)

	// Details -> DateTimeSelection: notes and insurance cleared, the
	// amenity and date survive
	view, err := svc.Back(sessionID)
	require.NoError(t, err)
	assert.Equal(t, StepDateTimeSelection, view.Step)
	assert.Empty(t, view.Draft.Notes)
	assert.False(t, view.Draft.IsInsured)
	assert.Equal(t, "pool", view.Draft.AmenityID)
	assert.Equal(t, "2026-09-07", view.Draft.Date)

	// DateTimeSelection -> AmenitySelection: everything else cleared
	view, err = svc.Back(sessionID)
	require.NoError(t, err)
	assert.Equal(t, StepAmenitySelection, view.Step)
	assert.Empty(t, view.Draft.AmenityID)
	assert.Empty(t, view.Draft.Date)
	assert.Empty(t, view.Draft.Time)
	assert.Equal(t, domain.MinPeople, view.Draft.People)
	assert.Empty(t, view.Slots)

	// First step has nothing behind it
	_, err = svc.Back(sessionID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestConfirm_HappyPath(t *testing.T) {
	submitter := &stubSubmitter{}
	svc := newTestService(availableSlots("10:00"), submitter)
	sessionID := advance(t, svc, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))

	_, err := svc.SetDetails(sessionID, &DetailsRequest{
		People:    ptr.Ptr(3),
		IsInsured: ptr.Ptr(true),
	})
	require.NoError(t, err)

	result, err := svc.Confirm(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "res-1", result.ReservationID)
	assert.Equal(t, "Piscina — Lun 2026-09-07 10:00, 3 personas", result.Summary)

	// Submitted payload carries the draft and enabled add-ons
	require.NotNil(t, submitter.last)
	assert.Equal(t, "pool", submitter.last.AmenityID)
	assert.Equal(t, int64(42), submitter.last.UserID)
	assert.Equal(t, "2026-09-07", submitter.last.Date)
	assert.Equal(t, "10:00", submitter.last.Time)
	assert.True(t, submitter.last.IsInsured)
	require.Len(t, submitter.last.AddOns, 1)
	assert.Equal(t, AddOnCleaningService, submitter.last.AddOns[0].Kind)

	// Confirmation is terminal: the session is gone
	_, err = svc.Get(sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirm_FailureRetainsDraft(t *testing.T) {
	submitter := &stubSubmitter{err: reservationservice.ErrSlotTaken}
	svc := newTestService(availableSlots("10:00"), submitter)
	sessionID := advance(t, svc, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local))

	_, err := svc.Confirm(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Session is still on the details step with the draft intact
	view, err := svc.Get(sessionID)
	require.NoError(t, err)
	assert.Equal(t, StepDetails, view.Step)
	assert.Equal(t, "10:00", view.Draft.Time)

	// A transient failure keeps the retry path open
	submitter.err = errors.New("connection refused")
	_, err = svc.Confirm(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	submitter.err = nil
	_, err = svc.Confirm(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, submitter.calls)
}

func TestConfirm_GuardsStep(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	view := svc.Start(42)

	_, err := svc.Confirm(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestCancel_DiscardsSession(t *testing.T) {
	svc := newTestService(availableSlots("10:00"), &stubSubmitter{})
	view := svc.Start(42)

	require.NoError(t, svc.Cancel(view.SessionID))
	assert.ErrorIs(t, svc.Cancel(view.SessionID), ErrSessionNotFound)
}

func TestExpireSessions_RemovesIdleOnly(t *testing.T) {
	svc := newTestService(nil, &stubSubmitter{})
	stale := svc.Start(1)
	fresh := svc.Start(2)

	// Age the first session past the deadline
	svc.mu.Lock()
	svc.sessions[stale.SessionID].UpdatedAt = time.Now().Add(-time.Hour)
	svc.mu.Unlock()

	svc.expireSessions(time.Now().Add(-30 * time.Minute))

	_, err := svc.Get(stale.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Get(fresh.SessionID)
	assert.NoError(t, err)
}
