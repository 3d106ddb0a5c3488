package user

import "github.com/m04kA/SMC-OvenBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
