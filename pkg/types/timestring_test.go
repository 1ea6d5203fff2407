package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30am")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestTimeString_At(t *testing.T) {
	ts := TimeString("14:30")
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	got, err := ts.At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC), got)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("21:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "22:15", got.String())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("22:00").IsAfter("08:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}
