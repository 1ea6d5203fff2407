package domain

import "time"

// Package represents a therapy package (massage type + nominal duration + price)
// Длительность пакета определяет EndTime аллокации при её создании
type Package struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
