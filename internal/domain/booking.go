package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true if the status belongs to the known set
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents an oven reservation in the system
// Интервал полуоткрытый: [Start, End)
type Reservation struct {
	ID          string
	RequesterID string
	ResourceID  string
	Title       string
	Start       time.Time
	End         time.Time
	Status      ReservationStatus

	CancelledBy        *string
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation takes part in quota and overlap checks
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Overlaps returns true if [Start, End) intersects [start, end)
// Касание границ (End == start) пересечением не считается
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.Start.Before(end) && start.Before(r.End)
}

// IsOwnedBy returns true if the reservation was placed by the user
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.RequesterID == userID
}

// CanBeCancelledBy returns true if the owner can still cancel the reservation at now
// Владелец может отменить только активное бронирование, до начала которого больше leadTime
func (r *Reservation) CanBeCancelledBy(userID string, now time.Time, leadTime time.Duration) bool {
	return r.IsActive() && r.IsOwnedBy(userID) && r.Start.After(now.Add(leadTime))
}

// ReservationQuery фильтр для выборки бронирований из хранилища
type ReservationQuery struct {
	RequesterID *string            // Фильтр по пользователю (опционально)
	ResourceID  *string            // Фильтр по печи (опционально)
	Status      *ReservationStatus // Фильтр по статусу (опционально)
	From        *time.Time         // Бронирования, заканчивающиеся после From
	To          *time.Time         // Бронирования, начинающиеся до To
}
