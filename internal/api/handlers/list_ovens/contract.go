package list_ovens

import (
	"context"

	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
)

type OvenService interface {
	List(ctx context.Context, req *models.ListOvensRequest) (*models.OvenListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
