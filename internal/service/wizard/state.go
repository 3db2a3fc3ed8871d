package wizard

import (
	"sync"
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
)

// Step шаг мастера бронирования.
// Порядок фиксирован: выбор объекта -> дата и время -> детали -> подтверждение.
// Подтверждение терминально: сессия сбрасывается сразу после успешной отправки.
type Step string

const (
	StepAmenitySelection  Step = "amenity_selection"
	StepDateTimeSelection Step = "datetime_selection"
	StepDetails           Step = "details"
)

// Session сессия мастера бронирования. Владеет черновиком монопольно;
// каталог объектов для неё read-only.
type Session struct {
	mu sync.Mutex

	ID     string
	Step   Step
	Draft  domain.ReservationDraft
	Slots  []domain.TimeSlot
	// Amenity снимок выбранного объекта на момент выбора
	Amenity *domain.Amenity

	UpdatedAt time.Time
}

// touch обновляет отметку активности сессии (для janitor)
func (s *Session) touch(now time.Time) {
	s.UpdatedAt = now
}

// DraftView представление черновика для API
type DraftView struct {
	AmenityID   string `json:"amenityId,omitempty"`
	AmenityName string `json:"amenityName,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	Time        string `json:"time,omitempty"` // HH:MM
	People      int    `json:"people"`
	Notes       string `json:"notes,omitempty"`
	IsInsured   bool   `json:"isInsured"`
}

// SessionView снимок состояния сессии, возвращаемый из операций мастера
type SessionView struct {
	SessionID string            `json:"sessionId"`
	Step      Step              `json:"step"`
	Draft     DraftView         `json:"draft"`
	Slots     []domain.TimeSlot `json:"slots,omitempty"`
	AddOns    []AddOnDisclosure `json:"addOns,omitempty"`
	Capacity  int               `json:"capacity,omitempty"`
}

// ConfirmResult результат успешного подтверждения бронирования
type ConfirmResult struct {
	ReservationID string    `json:"reservationId"`
	Summary       string    `json:"summary"`
	Draft         DraftView `json:"draft"`
}

// DetailsRequest изменение полей шага деталей.
// People устанавливает счетчик абсолютно (с проверкой границ),
// PeopleDelta сдвигает его на +/-1 с ограничением в границах (no-op на краях).
type DetailsRequest struct {
	People      *int
	PeopleDelta *int
	Notes       *string
	IsInsured   *bool
}

// view строит снимок состояния сессии. Вызывается под мьютексом сессии.
func (s *Session) view() *SessionView {
	view := &SessionView{
		SessionID: s.ID,
		Step:      s.Step,
		Draft: DraftView{
			AmenityID:   s.Draft.AmenityID,
			AmenityName: s.Draft.AmenityName,
			Time:        s.Draft.Time.String(),
			People:      s.Draft.People,
			Notes:       s.Draft.Notes,
			IsInsured:   s.Draft.IsInsured,
		},
		Slots: s.Slots,
	}

	if s.Draft.HasDate() {
		view.Draft.Date = s.Draft.Date.Format(domain.DateFormat)
	}
	if s.Amenity != nil {
		view.Capacity = s.Amenity.Capacity
		view.AddOns = ResolveAddOns(s.Amenity)
	}

	return view
}
