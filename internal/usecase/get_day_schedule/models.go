package get_day_schedule

import (
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// Request запрос расписания кровати на день
type Request struct {
	BedID int64
	Date  time.Time
}

// AllocationRef ссылка на аллокацию, занимающую слот
type AllocationRef struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	CustomerName  string `json:"customerName"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// SlotView один получасовой слот расписания
type SlotView struct {
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	IsPast      bool           `json:"isPast"`
	IsAvailable bool           `json:"isAvailable"`
	Allocation  *AllocationRef `json:"allocation,omitempty"`
}

// Response расписание кровати на день
type Response struct {
	BedID int64      `json:"bedId"`
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

func fromDomainAllocationRef(a *domain.BedAllocation) *AllocationRef {
	if a == nil {
		return nil
	}
	return &AllocationRef{
		ID:            a.ID,
		BookingNumber: a.BookingNumber,
		CustomerName:  a.CustomerName(),
		StartTime:     a.StartTime.Format(domain.TimeFormat),
		EndTime:       a.EndTime.Format(domain.TimeFormat),
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
	}
}
