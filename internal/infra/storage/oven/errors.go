package oven

import "errors"

var (
	// ErrOvenNotFound возвращается, когда печь не найдена
	ErrOvenNotFound = errors.New("oven.repository: oven not found")

	// ErrDuplicateName возвращается при попытке создать печь с существующим именем
	ErrDuplicateName = errors.New("oven.repository: oven with this name already exists")

	// ErrOvenReferenced возвращается при удалении печи, на которую ссылаются бронирования
	ErrOvenReferenced = errors.New("oven.repository: oven is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("oven.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("oven.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("oven.repository: failed to scan row")
)
