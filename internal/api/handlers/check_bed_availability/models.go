package check_bed_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// CheckAvailabilityResponse ответ проверки доступности кровати
type CheckAvailabilityResponse struct {
	BedID     int64     `json:"bedId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

// parseTimeRange разбирает start/end из query параметров (RFC 3339)
func parseTimeRange(startStr, endStr string) (domain.TimeRange, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("parse start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("parse end: %w", err)
	}
	return domain.TimeRange{Start: start, End: end}, nil
}
