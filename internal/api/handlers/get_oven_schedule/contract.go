package get_oven_schedule

import (
	"context"

	getOvenSchedule "github.com/m04kA/SMC-OvenBooking/internal/usecase/get_oven_schedule"
)

type GetOvenScheduleUseCase interface {
	Execute(ctx context.Context, req *getOvenSchedule.Request) (*getOvenSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
