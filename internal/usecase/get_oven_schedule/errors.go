package get_oven_schedule

import "errors"

var (
	// ErrOvenNotFound возвращается, когда печь не найдена
	ErrOvenNotFound = errors.New("get_oven_schedule: oven not found")

	// ErrInvalidWindow возвращается при некорректном окне (from >= to)
	ErrInvalidWindow = errors.New("get_oven_schedule: from must be before to")

	// ErrWindowTooLarge возвращается, когда окно больше допустимого
	ErrWindowTooLarge = errors.New("get_oven_schedule: window is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_oven_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_oven_schedule: internal error")
)
