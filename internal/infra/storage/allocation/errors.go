package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда аллокация не найдена
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	// ErrDuplicateBookingNumber возвращается при коллизии номера брони
	ErrDuplicateBookingNumber = errors.New("allocation.repository: booking number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("allocation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("allocation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("allocation.repository: failed to scan row")
)
