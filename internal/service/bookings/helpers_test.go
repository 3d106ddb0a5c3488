package bookings

import (
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
)

var (
	errUserNotFound = userRepo.ErrUserNotFound
	errOvenNotFound = ovenRepo.ErrOvenNotFound
)
