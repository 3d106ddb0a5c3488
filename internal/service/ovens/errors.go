package ovens

import "errors"

var (
	// ErrOvenNotFound возвращается, когда печь не найдена
	ErrOvenNotFound = errors.New("oven not found")

	// ErrOvenInUse возвращается при удалении печи с активными бронированиями
	ErrOvenInUse = errors.New("oven has active bookings")

	// ErrOvenReferenced возвращается при удалении печи с историей бронирований
	ErrOvenReferenced = errors.New("oven has booking history, retire it instead")

	// ErrDuplicateName возвращается, когда печь с таким именем уже существует
	ErrDuplicateName = errors.New("oven with this name already exists")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ovens.service: internal error")
)
