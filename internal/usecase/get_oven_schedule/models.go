package get_oven_schedule

import "time"

// Request модель запроса расписания печи
// Если From/To не заданы, берется неделя, начиная с текущего дня
type Request struct {
	OvenID string
	From   *time.Time
	To     *time.Time
}

// Response модель ответа с расписанием
type Response struct {
	OvenID     string
	OvenName   string
	OvenStatus string
	From       time.Time
	To         time.Time
	Slots      []Slot // Занятые и свободные интервалы, покрывающие [From, To)
}

// Slot интервал расписания
type Slot struct {
	Start     time.Time
	End       time.Time
	Free      bool
	BookingID *string
	UserID    *string
	Title     *string
}
