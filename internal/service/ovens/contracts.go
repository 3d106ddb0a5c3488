package ovens

import (
	"context"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// OvenRepository интерфейс репозитория печей
type OvenRepository interface {
	Create(ctx context.Context, oven *domain.Oven) (*domain.Oven, error)
	GetByID(ctx context.Context, id string) (*domain.Oven, error)
	List(ctx context.Context, status *domain.OvenStatus) ([]domain.Oven, error)
	Update(ctx context.Context, oven *domain.Oven) (*domain.Oven, error)
	Delete(ctx context.Context, id string) error
}

// BookingCounter считает активные бронирования печи
type BookingCounter interface {
	CountActive(ctx context.Context, ovenID string) (int, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
