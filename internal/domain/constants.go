package domain

import "time"

// Default policy values
const (
	DefaultMaxActiveReservations  = 2
	DefaultMaxReservationSpanDays = 7
	DefaultMinLeadTime            = time.Duration(0)
	DefaultCancellationLeadTime   = time.Hour
)

// Business validation constants
const (
	MinActiveReservationsLimit  = 1
	MinReservationSpanDays      = 1
	MaxReservationSpanDays      = 365
	MaxTitleLength              = 200
	MaxOvenNameLength           = 100
	MaxDescriptionLength        = 1000
	MaxCancellationReasonLength = 500
	MaxScheduleWindowDays       = 62
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Причины отмены бронирования администратором
const (
	CancelReasonWrongSchedule   = "Wrong schedule"
	CancelReasonOverlap         = "Overlap"
	CancelReasonPersonalRequest = "Personal Request"
)

// AdminCancellationReasons допустимые причины отмены администратором
var AdminCancellationReasons = []string{
	CancelReasonWrongSchedule,
	CancelReasonOverlap,
	CancelReasonPersonalRequest,
}

// OvenStatuses допустимые статусы печи
var OvenStatuses = []OvenStatus{
	OvenStatusActive,
	OvenStatusMaintenance,
	OvenStatusRetired,
}
