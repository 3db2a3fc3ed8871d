package domain

import "github.com/facilitae/FAC-AmenityService/pkg/types"

// SlotStatus availability status of a generated time slot
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

// TimeSlot is a single bookable start time on a concrete calendar date.
// Slots are derived from the amenity schedule on every request and never
// persisted. Within one generated list times are unique and sorted
// ascending.
type TimeSlot struct {
	Time   types.TimeString `json:"time"`
	Status SlotStatus       `json:"status"`
}

// IsAvailable returns true if the slot can be selected for booking
func (s TimeSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}
