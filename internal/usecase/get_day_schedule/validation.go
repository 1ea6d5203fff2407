package get_day_schedule

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.BedID <= 0 {
		return fmt.Errorf("%w: bed id must be positive, got %d", ErrInvalidBedID, req.BedID)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	return nil
}
