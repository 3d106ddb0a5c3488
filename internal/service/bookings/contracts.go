package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationQuery) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id, cancelledBy, reason string, cancelledAt time.Time) error
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context, ovenID string) (int, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// OvenRepository интерфейс репозитория печей
type OvenRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Oven, error)
	List(ctx context.Context, status *domain.OvenStatus) ([]domain.Oven, error)
}

// PolicySource источник текущих правил бронирования
type PolicySource interface {
	Current() domain.ValidationPolicy
}

// CompletionRecorder считает автоматически завершенные бронирования
type CompletionRecorder interface {
	AddCompleted(n int64)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
