package delete_oven

import "context"

type OvenService interface {
	Delete(ctx context.Context, ovenID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
