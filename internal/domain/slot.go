package domain

import "time"

// ScheduleSlot represents a busy or free interval of an oven within a requested window
type ScheduleSlot struct {
	Start         time.Time
	End           time.Time
	ReservationID *string // nil для свободного интервала
	RequesterID   *string
	Title         *string
}

// IsFree returns true if no reservation occupies the slot
func (s *ScheduleSlot) IsFree() bool {
	return s.ReservationID == nil
}

// Duration returns the length of the slot
func (s *ScheduleSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
