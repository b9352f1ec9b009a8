package models

import (
	"fmt"
	"time"
)

// SlotStatus is the lifecycle state of a slot.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
	SlotStatusDeleted   SlotStatus = "deleted"
)

// ParseSlotStatus validates a raw status string against the four known values.
func ParseSlotStatus(raw string) (SlotStatus, error) {
	switch s := SlotStatus(raw); s {
	case SlotStatusAvailable, SlotStatusBooked, SlotStatusCancelled, SlotStatusDeleted:
		return s, nil
	}
	return "", fmt.Errorf("unknown slot status %q", raw)
}

// Slot is a single bookable time window belonging to one consultant.
// StartTime is inclusive, EndTime exclusive. The grid UI assumes at most one
// slot per consultant per hour cell; day and hour are always re-derived from
// StartTime, never stored.
type Slot struct {
	ID           string     `bson:"id" json:"id"`
	ConsultantID string     `bson:"consultantId" json:"consultantId"`
	StartTime    time.Time  `bson:"startTime" json:"startTime"`
	EndTime      time.Time  `bson:"endTime" json:"endTime"`
	Status       SlotStatus `bson:"status" json:"status"`
}

// ValidRange reports whether the slot's time window is ordered.
func (s Slot) ValidRange() bool {
	return s.StartTime.Before(s.EndTime)
}
