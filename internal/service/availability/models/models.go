package models

import (
	"github.com/m04kA/SPA-BedService/internal/domain"
)

// BedResponse данные кровати в ответах API
type BedResponse struct {
	ID          int64    `json:"id"`
	BedNumber   string   `json:"bedNumber"`
	DisplayName string   `json:"displayName"`
	GridRow     int      `json:"gridRow"`
	GridCol     int      `json:"gridCol"`
	BedType     string   `json:"bedType"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
}

// BedListResponse ответ со списком свободных кроватей
type BedListResponse struct {
	Beds []BedResponse `json:"beds"`
}

// BookingRef краткие данные брони для отображения в сетке расписания
type BookingRef struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	CustomerName  string `json:"customerName"`
	StartTime     string `json:"startTime"` // "14:00"
	EndTime       string `json:"endTime"`   // "15:00"
	Status        string `json:"status"`
}

// BedAvailabilityView доступность одной кровати для дневной сетки расписания
type BedAvailabilityView struct {
	ID                  int64        `json:"id"`
	BedNumber           string       `json:"bedNumber"`
	DisplayName         string       `json:"displayName"`
	GridRow             int          `json:"gridRow"`
	GridCol             int          `json:"gridCol"`
	BedType             string       `json:"bedType"`
	CurrentStatus       string       `json:"currentStatus"`
	IsAvailable         bool         `json:"isAvailable"`
	ConflictingBookings []BookingRef `json:"conflictingBookings"`
	DayBookings         []BookingRef `json:"dayBookings"`
}

// BedScheduleResponse ответ с дневной сеткой по всем кроватям
type BedScheduleResponse struct {
	Date string                `json:"date"`
	Beds []BedAvailabilityView `json:"beds"`
}

// Методы конвертации

// FromDomainBed конвертирует domain модель кровати в DTO
func FromDomainBed(b *domain.Bed) BedResponse {
	return BedResponse{
		ID:          b.ID,
		BedNumber:   b.BedNumber,
		DisplayName: b.Label(),
		GridRow:     b.GridRow,
		GridCol:     b.GridCol,
		BedType:     b.BedType,
		HourlyRate:  b.HourlyRate,
	}
}

// FromDomainAllocationRef конвертирует аллокацию в краткую ссылку на бронь
func FromDomainAllocationRef(a *domain.BedAllocation) BookingRef {
	return BookingRef{
		ID:            a.ID,
		BookingNumber: a.BookingNumber,
		CustomerName:  a.CustomerName(),
		StartTime:     a.StartTime.Format(domain.TimeFormat),
		EndTime:       a.EndTime.Format(domain.TimeFormat),
		Status:        string(a.Status),
	}
}
