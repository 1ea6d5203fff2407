package reconcile_statuses

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
