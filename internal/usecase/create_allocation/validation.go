package create_allocation

import (
	"fmt"
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request, now time.Time) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrValidation)
	}
	if req.BedID <= 0 {
		return fmt.Errorf("%w: bed id must be positive", ErrValidation)
	}
	if req.PackageID <= 0 {
		return fmt.Errorf("%w: package id must be positive", ErrValidation)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrValidation)
	}
	if req.StartTime.Before(now) {
		return fmt.Errorf("%w: start time is in the past", ErrValidation)
	}
	return nil
}

// validateBusinessHours проверяет, что сеанс целиком лежит в рабочем окне дня
func validateBusinessHours(rng domain.TimeRange) error {
	open := time.Date(rng.Start.Year(), rng.Start.Month(), rng.Start.Day(),
		domain.BusinessOpenHour, 0, 0, 0, rng.Start.Location())
	close := time.Date(rng.Start.Year(), rng.Start.Month(), rng.Start.Day(),
		domain.BusinessCloseHour, 0, 0, 0, rng.Start.Location())

	if rng.Start.Before(open) || rng.End.After(close) {
		return fmt.Errorf("%w: session %s-%s is outside business hours %02d:00-%02d:00",
			ErrValidation,
			rng.Start.Format(domain.TimeFormat), rng.End.Format(domain.TimeFormat),
			domain.BusinessOpenHour, domain.BusinessCloseHour)
	}
	return nil
}
