package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
	"github.com/facilitae/FAC-AmenityService/internal/integrations/reservationservice"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

// Service мастер бронирования: конечный автомат из четырех шагов,
// накапливающий черновик. Сессии живут только в памяти: черновик по
// контракту никогда не сохраняется до подтверждения.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	slots     SlotsUseCase
	amenities AmenityRepository
	submitter ReservationSubmitter
	logger    Logger
}

// NewService создает новый экземпляр мастера бронирования
func NewService(
	slots SlotsUseCase,
	amenities AmenityRepository,
	submitter ReservationSubmitter,
	logger Logger,
) *Service {
	return &Service{
		sessions:  make(map[string]*Session),
		slots:     slots,
		amenities: amenities,
		submitter: submitter,
		logger:    logger,
	}
}

// Start открывает новую сессию мастера с пустым черновиком
func (s *Service) Start(userID int64) *SessionView {
	session := &Session{
		ID:    uuid.NewString(),
		Step:  StepAmenitySelection,
		Draft: domain.NewReservationDraft(userID),
	}
	session.touch(time.Now())

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Wizard.Start: session=%s, user=%d", session.ID, userID)
	return session.view()
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(sessionID string) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// SelectAmenity переход AmenitySelection -> DateTimeSelection.
// Для новых бронирований выбираются только объекты со статусом available;
// rebook открывает путь повторного бронирования "на другой день" и для
// объектов в остальных статусах.
func (s *Service) SelectAmenity(ctx context.Context, sessionID, amenityID string, rebook bool) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step != StepAmenitySelection {
		s.logger.Warn("Wizard.SelectAmenity: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}

	amenity, err := s.amenities.GetByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			s.logger.Warn("Wizard.SelectAmenity: amenity id=%s not found", amenityID)
			return nil, ErrAmenityNotFound
		}
		s.logger.Error("Wizard.SelectAmenity: failed to get amenity id=%s: %v", amenityID, err)
		return nil, fmt.Errorf("%w: failed to get amenity: %v", ErrInternal, err)
	}

	if !amenity.IsSelectable() && !rebook {
		s.logger.Warn("Wizard.SelectAmenity: amenity id=%s status=%s not selectable", amenityID, amenity.Status)
		return nil, ErrAmenityNotSelectable
	}

	session.Amenity = amenity
	session.Draft.AmenityID = amenity.ID
	session.Draft.AmenityName = amenity.Name
	session.Draft.People = domain.MinPeople
	session.Step = StepDateTimeSelection
	session.touch(time.Now())

	s.logger.Info("Wizard.SelectAmenity: session=%s, amenity=%s, rebook=%t", sessionID, amenityID, rebook)
	return session.view(), nil
}

// SelectDate устанавливает дату и пересчитывает список слотов.
// Ранее выбранное время, отсутствующее или недоступное в новом списке,
// молча сбрасывается: пользователь выбирает заново, это не ошибка.
func (s *Service) SelectDate(ctx context.Context, sessionID string, date time.Time) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step != StepDateTimeSelection {
		s.logger.Warn("Wizard.SelectDate: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	resp, err := s.slots.Execute(ctx, &getAvailableSlots.Request{
		AmenityID: session.Draft.AmenityID,
		Date:      date,
		Mode:      domain.ModeCustomer,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrAmenityNotFound) {
			return nil, ErrAmenityNotFound
		}
		s.logger.Error("Wizard.SelectDate: failed to generate slots for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	session.Draft.Date = date
	session.Slots = resp.Slots

	if session.Draft.HasTime() && !slotSelectable(resp.Slots, session.Draft.Time) {
		s.logger.Info("Wizard.SelectDate: session=%s, previously chosen time %s discarded",
			sessionID, session.Draft.Time)
		session.Draft.Time = ""
	}
	session.touch(time.Now())

	s.logger.Info("Wizard.SelectDate: session=%s, date=%s, slots=%d",
		sessionID, date.Format(domain.DateFormat), len(resp.Slots))
	return session.view(), nil
}

// SelectTime переход DateTimeSelection -> Details.
// Требует выбранной даты и слота со статусом available из текущего списка.
func (s *Service) SelectTime(sessionID string, slotTime types.TimeString) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step != StepDateTimeSelection {
		s.logger.Warn("Wizard.SelectTime: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}
	if !session.Draft.HasDate() {
		return nil, ErrDateRequired
	}
	if !slotSelectable(session.Slots, slotTime) {
		s.logger.Warn("Wizard.SelectTime: session=%s, slot %s not available", sessionID, slotTime)
		return nil, ErrSlotNotAvailable
	}

	session.Draft.Time = slotTime
	session.Step = StepDetails
	session.touch(time.Now())

	s.logger.Info("Wizard.SelectTime: session=%s, time=%s", sessionID, slotTime)
	return session.view(), nil
}

// SetDetails изменяет поля шага деталей: счетчик человек, заметки,
// флаг страховки
func (s *Service) SetDetails(sessionID string, req *DetailsRequest) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step != StepDetails {
		s.logger.Warn("Wizard.SetDetails: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}

	capacity := session.Amenity.Capacity

	if req.People != nil {
		if *req.People < domain.MinPeople || *req.People > capacity {
			s.logger.Warn("Wizard.SetDetails: session=%s, people=%d out of [%d, %d]",
				sessionID, *req.People, domain.MinPeople, capacity)
			return nil, ErrPeopleOutOfRange
		}
		session.Draft.People = *req.People
	}

	// Инкремент/декремент счетчика ограничивается границами:
	// выход за [1, capacity] это no-op, не ошибка
	if req.PeopleDelta != nil {
		session.Draft.People = clampPeople(session.Draft.People+*req.PeopleDelta, capacity)
	}

	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		session.Draft.Notes = *req.Notes
	}

	if req.IsInsured != nil {
		session.Draft.IsInsured = *req.IsInsured
	}
	session.touch(time.Now())

	return session.view(), nil
}

// Back выполняет обратный переход с правилами сброса:
//   - Details -> DateTimeSelection: очищает заметки и флаг страховки,
//     объект и дата сохраняются
//   - DateTimeSelection -> AmenitySelection: очищает дату, время, счетчик
//     человек и выбранный объект
func (s *Service) Back(sessionID string) (*SessionView, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.Step {
	case StepDetails:
		session.Draft.ClearDetails()
		session.Step = StepDateTimeSelection

	case StepDateTimeSelection:
		session.Draft.ClearDateTime()
		session.Amenity = nil
		session.Slots = nil
		session.Step = StepAmenitySelection

	default:
		s.logger.Warn("Wizard.Back: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}
	session.touch(time.Now())

	s.logger.Info("Wizard.Back: session=%s, step=%s", sessionID, session.Step)
	return session.view(), nil
}

// Confirm переход Details -> Confirmed: передает завершенный черновик
// внешнему сервису бронирований. При неуспехе отправки сессия остается
// на шаге деталей с нетронутым черновиком, чтобы пользователь повторил
// отправку без повторного ввода. При успехе сессия сбрасывается.
func (s *Service) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step != StepDetails {
		s.logger.Warn("Wizard.Confirm: session=%s at step=%s, transition refused", sessionID, session.Step)
		return nil, ErrInvalidStep
	}
	if !session.Draft.HasTime() {
		return nil, ErrTimeRequired
	}
	if !session.Draft.PeopleInRange(session.Amenity.Capacity) {
		return nil, ErrPeopleOutOfRange
	}

	reservation := buildReservation(&session.Draft, session.Amenity)

	ack, err := s.submitter.SubmitReservation(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservationservice.ErrSlotTaken) {
			s.logger.Warn("Wizard.Confirm: session=%s, slot taken, draft retained", sessionID)
			return nil, ErrSlotTaken
		}
		s.logger.Error("Wizard.Confirm: session=%s, submission failed, draft retained: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	result := &ConfirmResult{
		ReservationID: ack.ReservationID,
		Summary:       summarize(&session.Draft),
		Draft:         session.view().Draft,
	}

	// Подтверждение терминально: сессия сбрасывается сразу после успеха
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.logger.Info("Wizard.Confirm: session=%s confirmed, reservation_id=%s", sessionID, ack.ReservationID)
	return result, nil
}

// Cancel безусловно отбрасывает черновик и закрывает сессию.
// Доступен с любого шага.
func (s *Service) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.logger.Info("Wizard.Cancel: session=%s discarded", sessionID)
	return nil
}

// RunJanitor периодически удаляет сессии без активности дольше ttl.
// Блокируется до закрытия stopCh.
func (s *Service) RunJanitor(ttl, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions(time.Now().Add(-ttl))
		case <-stopCh:
			return
		}
	}
}

func (s *Service) expireSessions(deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.UpdatedAt.Before(deadline) {
			delete(s.sessions, id)
			s.logger.Info("Wizard.Janitor: session=%s expired", id)
		}
	}
}

func (s *Service) getSession(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// slotSelectable проверяет, что время присутствует в списке слотов
// со статусом available
func slotSelectable(slots []domain.TimeSlot, t types.TimeString) bool {
	for _, slot := range slots {
		if slot.Time == t {
			return slot.IsAvailable()
		}
	}
	return false
}

// clampPeople ограничивает счетчик человек границами [MinPeople, capacity]
func clampPeople(people, capacity int) int {
	if people < domain.MinPeople {
		return domain.MinPeople
	}
	if people > capacity {
		return capacity
	}
	return people
}

// buildReservation собирает payload для внешнего сервиса из черновика
// и включенных доп. услуг объекта
func buildReservation(draft *domain.ReservationDraft, amenity *domain.Amenity) *reservationservice.Reservation {
	disclosures := ResolveAddOns(amenity)
	addOns := make([]reservationservice.AddOn, 0, len(disclosures))
	for _, d := range disclosures {
		addOns = append(addOns, reservationservice.AddOn{
			Kind:        d.Kind,
			Amount:      d.Amount,
			Description: d.Description,
		})
	}

	return &reservationservice.Reservation{
		AmenityID:   draft.AmenityID,
		AmenityName: draft.AmenityName,
		UserID:      draft.UserID,
		Date:        draft.Date.Format(domain.DateFormat),
		Time:        draft.Time.String(),
		People:      draft.People,
		Notes:       draft.Notes,
		IsInsured:   draft.IsInsured,
		AddOns:      addOns,
	}
}

// summarize строит краткое описание бронирования с коротким названием
// дня недели для экранов подтверждения
func summarize(draft *domain.ReservationDraft) string {
	label := domain.WeekdayLabels[domain.WeekdayFromTime(draft.Date)]
	return fmt.Sprintf("%s — %s %s %s, %d personas",
		draft.AmenityName, label, draft.Date.Format(domain.DateFormat), draft.Time, draft.People)
}
