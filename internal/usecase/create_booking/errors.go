package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-OvenBooking/internal/validator"
)

var (
	// ErrOvenNotFound возвращается, когда печь не найдена
	ErrOvenNotFound = errors.New("create_booking: oven not found")

	// ErrOvenUnavailable возвращается, когда печь на обслуживании или списана
	ErrOvenUnavailable = errors.New("create_booking: oven is not available for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Отказы валидатора
var (
	ErrMalformedCandidate = validator.ErrMalformedCandidate
	ErrInvalidInterval    = validator.ErrInvalidInterval
	ErrStartInPast        = validator.ErrStartInPast
	ErrQuotaExceeded      = validator.ErrQuotaExceeded
	ErrSpanTooLong        = validator.ErrSpanTooLong
	ErrResourceConflict   = validator.ErrResourceConflict
)
