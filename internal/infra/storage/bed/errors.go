package bed

import "errors"

var (
	// ErrBedNotFound возвращается, когда кровать не найдена
	ErrBedNotFound = errors.New("bed.repository: bed not found")

	// ErrDuplicateBedNumber возвращается при попытке создать кровать с занятым номером
	ErrDuplicateBedNumber = errors.New("bed.repository: bed number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bed.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bed.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bed.repository: failed to scan row")
)
