package domain

import (
	"time"

	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

// ReservationDraft is the in-progress reservation assembled by the
// wizard. It is created empty when the wizard opens, mutated field by
// field as the user advances, and either discarded or handed to the
// submission collaborator; never persisted mid-flight.
type ReservationDraft struct {
	AmenityID string
	// AmenityName is denormalized for the submission payload
	AmenityName string
	UserID      int64
	Date        time.Time
	Time        types.TimeString
	People      int
	Notes       string
	IsInsured   bool
}

// NewReservationDraft returns an empty draft with the people counter at
// its lower bound
func NewReservationDraft(userID int64) ReservationDraft {
	return ReservationDraft{UserID: userID, People: MinPeople}
}

// HasDate returns true when a calendar date has been chosen
func (d *ReservationDraft) HasDate() bool {
	return !d.Date.IsZero()
}

// HasTime returns true when a time slot has been chosen
func (d *ReservationDraft) HasTime() bool {
	return !d.Time.IsZero()
}

// PeopleInRange returns true when the people counter is within
// [MinPeople, capacity]
func (d *ReservationDraft) PeopleInRange(capacity int) bool {
	return d.People >= MinPeople && d.People <= capacity
}

// ClearDetails resets the fields collected at the details step.
// Applied when navigating back from Details to DateTimeSelection.
func (d *ReservationDraft) ClearDetails() {
	d.Notes = ""
	d.IsInsured = false
}

// ClearDateTime resets the date, time and people counter along with the
// selected amenity. Applied when navigating back from DateTimeSelection
// to AmenitySelection.
func (d *ReservationDraft) ClearDateTime() {
	d.Date = time.Time{}
	d.Time = ""
	d.People = MinPeople
	d.AmenityID = ""
	d.AmenityName = ""
}
