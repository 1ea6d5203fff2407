package domain

import "time"

// TimeRange represents a half-open time interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the range is non-degenerate (Start < End)
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps проверяет пересечение двух полузакрытых интервалов:
// [s1,e1) и [s2,e2) пересекаются, только если s1 < e2 И e1 > s2.
// Граничащие интервалы (конец одного = начало другого) НЕ пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains returns true if t falls inside [Start, End)
func (r TimeRange) Contains(t time.Time) bool {
	return !r.Start.After(t) && r.End.After(t)
}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
