package get_day_schedule

import (
	"time"

	"github.com/m04kA/SPA-BedService/internal/domain"
)

// buildDaySlots разбивает рабочий день на получасовые слоты и размечает
// каждый по аллокациям кровати
//
// Слот помечается прошедшим, если его начало строго раньше текущего
// момента: слот, начинающийся ровно сейчас, ещё доступен. Занимающей
// считается первая аллокация, покрывающая начало слота; доступность
// требует отсутствия любого пересечения со слотом, а не только покрытия
func buildDaySlots(date time.Time, allocations []*domain.BedAllocation, now time.Time) []SlotView {
	open := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessOpenHour, 0, 0, 0, date.Location())
	close := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessCloseHour, 0, 0, 0, date.Location())

	slotDuration := domain.SlotDurationMinutes * time.Minute
	slots := make([]SlotView, 0, int(close.Sub(open)/slotDuration))

	for start := open; start.Before(close); start = start.Add(slotDuration) {
		end := start.Add(slotDuration)
		slotRange := domain.TimeRange{Start: start, End: end}

		var occupying *domain.BedAllocation
		overlaps := false
		for _, a := range allocations {
			if a.IsCancelled() {
				continue
			}
			if a.Range().Overlaps(slotRange) {
				overlaps = true
			}
			if occupying == nil && a.Covers(start) {
				occupying = a
			}
		}

		isPast := start.Before(now)

		slots = append(slots, SlotView{
			StartTime:   start.Format(domain.TimeFormat),
			EndTime:     end.Format(domain.TimeFormat),
			IsPast:      isPast,
			IsAvailable: !isPast && !overlaps,
			Allocation:  fromDomainAllocationRef(occupying),
		})
	}

	return slots
}
