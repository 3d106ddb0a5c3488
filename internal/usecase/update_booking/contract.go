package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetSnapshot(ctx context.Context, ovenID, userID string) ([]domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// PolicySource источник текущих правил бронирования
type PolicySource interface {
	Current() domain.ValidationPolicy
}

// DecisionRecorder фиксирует решения валидатора в метриках
type DecisionRecorder interface {
	RecordDecision(mode, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
