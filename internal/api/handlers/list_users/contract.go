package list_users

import (
	"context"

	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, userID string) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
