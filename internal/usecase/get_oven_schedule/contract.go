package get_oven_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.ReservationQuery) ([]domain.Reservation, error)
}

// OvenRepository интерфейс репозитория печей
type OvenRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Oven, error)
}

// PolicySource источник правил бронирования, нужен часовой пояс календарных дней
type PolicySource interface {
	Current() domain.ValidationPolicy
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
