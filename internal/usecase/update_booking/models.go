package update_booking

import "time"

// Request модель запроса на изменение бронирования
type Request struct {
	UserID    string // Кто изменяет (владелец или администратор)
	BookingID string
	Title     string
	Start     time.Time
	End       time.Time
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID        string
	UserID    string
	OvenID    string
	Title     string
	Start     time.Time
	End       time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
