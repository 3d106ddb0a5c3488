package update_user_role

import (
	"context"

	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

type UserService interface {
	SetRole(ctx context.Context, req *models.SetRoleRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
