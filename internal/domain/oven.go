package domain

import "time"

// OvenStatus represents the operational status of an oven
type OvenStatus string

const (
	OvenStatusActive      OvenStatus = "active"
	OvenStatusMaintenance OvenStatus = "maintenance"
	OvenStatusRetired     OvenStatus = "retired"
)

// IsValid returns true if the status belongs to the known set
func (s OvenStatus) IsValid() bool {
	switch s {
	case OvenStatusActive, OvenStatusMaintenance, OvenStatusRetired:
		return true
	}
	return false
}

// Oven represents a bookable lab oven
type Oven struct {
	ID             string
	Name           string
	Status         OvenStatus
	Description    *string
	MaxTemperature *int // °C
	Capacity       *string
	Location       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsBookable returns true if new reservations can be placed on the oven
func (o *Oven) IsBookable() bool {
	return o.Status == OvenStatusActive
}
