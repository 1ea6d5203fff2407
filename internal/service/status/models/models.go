package models

import (
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// CustomerDetail данные клиента в ответе статусной доски
type CustomerDetail struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// PackageDetail данные пакета в ответе статусной доски
type PackageDetail struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AllocationDetail аллокация, определившая статус кровати
type AllocationDetail struct {
	ID            int64           `json:"id"`
	BookingNumber string          `json:"bookingNumber"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Customer      *CustomerDetail `json:"customer,omitempty"`
	Package       *PackageDetail  `json:"package,omitempty"`
}

// BedStatusView вычисленный статус одной кровати
type BedStatusView struct {
	ID                int64             `json:"id"`
	BedNumber         string            `json:"bedNumber"`
	DisplayName       string            `json:"displayName"`
	GridRow           int               `json:"gridRow"`
	GridCol           int               `json:"gridCol"`
	BedType           string            `json:"bedType"`
	Status            string            `json:"status"`
	CurrentAllocation *AllocationDetail `json:"currentAllocation,omitempty"`
}

// BedStatusListResponse ответ статусной доски по всем кроватям
type BedStatusListResponse struct {
	Beds []BedStatusView `json:"beds"`
}

// FromDomainAllocationDetail конвертирует аллокацию с деталями в DTO
func FromDomainAllocationDetail(a *domain.BedAllocation) *AllocationDetail {
	if a == nil {
		return nil
	}

	detail := &AllocationDetail{
		ID:            a.ID,
		BookingNumber: a.BookingNumber,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
	}

	if a.Customer != nil {
		detail.Customer = &CustomerDetail{
			ID:    a.Customer.ID,
			Name:  a.Customer.Name,
			Phone: a.Customer.Phone,
		}
	}

	if a.Package != nil {
		detail.Package = &PackageDetail{
			ID:              a.Package.ID,
			Name:            a.Package.Name,
			DurationMinutes: a.Package.DurationMinutes,
			Price:           a.Package.Price,
		}
	}

	return detail
}
