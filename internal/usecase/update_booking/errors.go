package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-OvenBooking/internal/validator"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingNotActive возвращается при попытке изменить завершенное или отмененное бронирование
	ErrBookingNotActive = errors.New("update_booking: only active bookings can be edited")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
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
