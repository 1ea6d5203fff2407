package models

import (
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// CreateBedRequest запрос на создание кровати
type CreateBedRequest struct {
	BedNumber   string   `json:"bedNumber"`
	DisplayName *string  `json:"displayName,omitempty"`
	GridRow     int      `json:"gridRow"`
	GridCol     int      `json:"gridCol"`
	BedType     *string  `json:"bedType,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// UpdateBedRequest запрос на частичное обновление кровати
// nil-поля не изменяются
type UpdateBedRequest struct {
	DisplayName *string  `json:"displayName,omitempty"`
	GridRow     *int     `json:"gridRow,omitempty"`
	GridCol     *int     `json:"gridCol,omitempty"`
	BedType     *string  `json:"bedType,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// BedListResponse ответ со списком кроватей
type BedListResponse struct {
	Beds []BedResponse `json:"beds"`
}

// BedResponse кровать в ответе API
type BedResponse struct {
	ID          int64     `json:"id"`
	BedNumber   string    `json:"bedNumber"`
	DisplayName string    `json:"displayName"`
	GridRow     int       `json:"gridRow"`
	GridCol     int       `json:"gridCol"`
	BedType     string    `json:"bedType"`
	HourlyRate  *float64  `json:"hourlyRate,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainBed конвертирует доменную кровать в DTO
func FromDomainBed(b *domain.Bed) *BedResponse {
	return &BedResponse{
		ID:          b.ID,
		BedNumber:   b.BedNumber,
		DisplayName: b.Label(),
		GridRow:     b.GridRow,
		GridCol:     b.GridCol,
		BedType:     b.BedType,
		HourlyRate:  b.HourlyRate,
		Description: b.Description,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
