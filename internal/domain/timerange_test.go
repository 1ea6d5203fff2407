package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tr(startHour, endHour int) TimeRange {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"identical ranges", tr(10, 12), tr(10, 12), true},
		{"b inside a", tr(10, 14), tr(11, 12), true},
		{"partial overlap", tr(10, 12), tr(11, 13), true},
		{"disjoint", tr(10, 11), tr(12, 13), false},
		{"adjacent: a ends where b starts", tr(10, 12), tr(12, 14), false},
		{"adjacent: b ends where a starts", tr(12, 14), tr(10, 12), false},
		{"one minute into the boundary", tr(10, 12), TimeRange{
			Start: tr(0, 0).Start.Add(11*time.Hour + 59*time.Minute),
			End:   tr(0, 0).Start.Add(13 * time.Hour),
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_OverlapsSelf(t *testing.T) {
	r := tr(9, 10)
	assert.True(t, r.Overlaps(r))
}

func TestTimeRange_IsValid(t *testing.T) {
	assert.True(t, tr(10, 11).IsValid())
	assert.False(t, tr(11, 10).IsValid())

	// Пустой интервал невалиден
	assert.False(t, tr(10, 10).IsValid())
}

func TestTimeRange_Contains(t *testing.T) {
	r := tr(10, 12)

	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.Start.Add(time.Hour)))
	// Правая граница открыта
	assert.False(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Second)))
}
