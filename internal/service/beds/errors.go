package beds

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("service: bed not found")

	// ErrDuplicateBedNumber возвращается при попытке занять существующий номер
	ErrDuplicateBedNumber = errors.New("service: bed number already exists")

	// ErrInvalidStatus возвращается при неизвестном статусе кровати
	ErrInvalidStatus = errors.New("service: invalid bed status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
