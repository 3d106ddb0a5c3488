package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel возвращается, когда бронирование уже завершено или отменено
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrTooLateToCancel возвращается, когда до начала бронирования осталось меньше допустимого
	ErrTooLateToCancel = errors.New("bookings.service: too late to cancel this booking")

	// ErrInvalidReason возвращается при некорректной причине отмены администратором
	ErrInvalidReason = errors.New("bookings.service: invalid cancellation reason")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
