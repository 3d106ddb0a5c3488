package domain

import (
	"fmt"
	"time"
)

// ValidationMode distinguishes validation of a new reservation from revalidation of an edit
type ValidationMode string

const (
	ModeCreate ValidationMode = "create"
	ModeEdit   ValidationMode = "edit"
)

// ValidationPolicy represents the booking rules shared by all ovens of the pool
type ValidationPolicy struct {
	MaxActiveReservationsPerRequester int
	MaxReservationSpanDays            int
	MinLeadTime                       time.Duration
	CancellationLeadTime              time.Duration
	// Location часовой пояс, в котором считаются календарные дни
	Location *time.Location
	Mode     ValidationMode
}

// DefaultValidationPolicy returns the policy used when nothing is configured
func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		MaxActiveReservationsPerRequester: DefaultMaxActiveReservations,
		MaxReservationSpanDays:            DefaultMaxReservationSpanDays,
		MinLeadTime:                       DefaultMinLeadTime,
		CancellationLeadTime:              DefaultCancellationLeadTime,
		Location:                          time.UTC,
		Mode:                              ModeCreate,
	}
}

// ForMode returns a copy of the policy with the given mode
func (p ValidationPolicy) ForMode(mode ValidationMode) ValidationPolicy {
	p.Mode = mode
	return p
}

// IsEdit returns true if the policy validates an edit of an existing reservation
func (p ValidationPolicy) IsEdit() bool {
	return p.Mode == ModeEdit
}

// Zone returns the reference time zone, UTC when unset
func (p ValidationPolicy) Zone() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Validate checks that the policy values are within allowed bounds
func (p ValidationPolicy) Validate() error {
	if p.MaxActiveReservationsPerRequester < MinActiveReservationsLimit {
		return fmt.Errorf("max active reservations per requester must be >= %d, got %d",
			MinActiveReservationsLimit, p.MaxActiveReservationsPerRequester)
	}
	if p.MaxReservationSpanDays < MinReservationSpanDays || p.MaxReservationSpanDays > MaxReservationSpanDays {
		return fmt.Errorf("max reservation span days must be in [%d, %d], got %d",
			MinReservationSpanDays, MaxReservationSpanDays, p.MaxReservationSpanDays)
	}
	if p.MinLeadTime < 0 {
		return fmt.Errorf("min lead time must be >= 0, got %s", p.MinLeadTime)
	}
	if p.CancellationLeadTime < 0 {
		return fmt.Errorf("cancellation lead time must be >= 0, got %s", p.CancellationLeadTime)
	}
	if p.Mode != "" && p.Mode != ModeCreate && p.Mode != ModeEdit {
		return fmt.Errorf("unknown validation mode %q", p.Mode)
	}
	return nil
}
