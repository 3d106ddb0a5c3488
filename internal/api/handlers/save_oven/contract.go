package save_oven

import (
	"context"

	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
)

type OvenService interface {
	Create(ctx context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error)
	Update(ctx context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
