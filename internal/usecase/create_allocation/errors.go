package create_allocation

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("usecase: validation failed")

	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("usecase: bed not found")

	// ErrBedInMaintenance возвращается при попытке забронировать кровать на обслуживании
	ErrBedInMaintenance = errors.New("usecase: bed is in maintenance")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("usecase: customer not found")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("usecase: package not found")

	// ErrTimeConflict возвращается при пересечении с существующей аллокацией
	ErrTimeConflict = errors.New("usecase: time slot conflict")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
