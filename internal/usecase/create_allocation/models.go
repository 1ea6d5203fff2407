package create_allocation

import (
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// Request запрос на создание аллокации
type Request struct {
	CustomerID int64     `json:"customerId"`
	BedID      int64     `json:"bedId"`
	PackageID  int64     `json:"packageId"`
	StartTime  time.Time `json:"startTime"`
	Notes      *string   `json:"notes,omitempty"`
}

// Response созданная аллокация
type Response struct {
	ID            int64     `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	CustomerID    int64     `json:"customerId"`
	BedID         int64     `json:"bedId"`
	PackageID     int64     `json:"packageId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func fromDomainAllocation(a *domain.BedAllocation) *Response {
	return &Response{
		ID:            a.ID,
		BookingNumber: a.BookingNumber,
		CustomerID:    a.CustomerID,
		BedID:         a.BedID,
		PackageID:     a.PackageID,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}
