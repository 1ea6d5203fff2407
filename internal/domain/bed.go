package domain

import (
	"fmt"
	"time"
)

// BedStatus represents the cached status of a bed/table
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusMaintenance BedStatus = "maintenance"
	BedStatusBookedSoon  BedStatus = "booked_soon"
)

// Bed represents a massage bed/table in the spa
//
// Поле Status - кэшируемая проекция состояния аллокаций, пересчитывается
// фоновым джобом. Для решений о бронировании оно НЕ авторитетно:
// конфликты всегда проверяются по самим аллокациям.
// Исключение - maintenance: выставляется только вручную и никогда
// не снимается автоматикой.
type Bed struct {
	ID          int64
	BedNumber   string
	DisplayName *string
	GridRow     int
	GridCol     int
	BedType     string
	HourlyRate  *float64
	Description *string
	Status      BedStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InMaintenance returns true if the bed is taken out of service
func (b *Bed) InMaintenance() bool {
	return b.Status == BedStatusMaintenance
}

// Label returns the human-readable name of the bed
func (b *Bed) Label() string {
	if b.DisplayName != nil && *b.DisplayName != "" {
		return *b.DisplayName
	}
	return fmt.Sprintf("Table %s", b.BedNumber)
}
