package get_day_schedule

import "errors"

var (
	// ErrInvalidBedID возвращается при некорректном id кровати
	ErrInvalidBedID = errors.New("usecase: invalid bed id")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("usecase: invalid date")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
