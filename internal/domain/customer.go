package domain

import "time"

// Customer represents a spa customer
type Customer struct {
	ID    int64
	Name  string
	Phone *string
	Email *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
