package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func allocAt(status AllocationStatus, payment PaymentStatus, start, end time.Time) *BedAllocation {
	return &BedAllocation{
		ID:            1,
		BedID:         1,
		StartTime:     start,
		EndTime:       end,
		Status:        status,
		PaymentStatus: payment,
	}
}

func TestBedAllocation_OccupiesAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	covering := func(status AllocationStatus, payment PaymentStatus) *BedAllocation {
		return allocAt(status, payment, now.Add(-30*time.Minute), now.Add(30*time.Minute))
	}

	assert.True(t, covering(AllocationStatusConfirmed, PaymentStatusPaid).OccupiesAt(now))
	assert.True(t, covering(AllocationStatusInProgress, PaymentStatusPaid).OccupiesAt(now))

	// Без оплаты кровать не занята
	assert.False(t, covering(AllocationStatusConfirmed, PaymentStatusPending).OccupiesAt(now))
	assert.False(t, covering(AllocationStatusInProgress, PaymentStatusPending).OccupiesAt(now))

	assert.False(t, covering(AllocationStatusPending, PaymentStatusPaid).OccupiesAt(now))
	assert.False(t, covering(AllocationStatusCancelled, PaymentStatusPaid).OccupiesAt(now))
	assert.False(t, covering(AllocationStatusCompleted, PaymentStatusPaid).OccupiesAt(now))

	// Окно не покрывает текущий момент
	past := allocAt(AllocationStatusConfirmed, PaymentStatusPaid, now.Add(-2*time.Hour), now.Add(-time.Hour))
	assert.False(t, past.OccupiesAt(now))

	// Правая граница открыта: аллокация, заканчивающаяся ровно сейчас, не занимает
	ending := allocAt(AllocationStatusInProgress, PaymentStatusPaid, now.Add(-time.Hour), now)
	assert.False(t, ending.OccupiesAt(now))
}

func TestBedAllocation_StartsWithinLock(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	startingIn := func(d time.Duration) *BedAllocation {
		return allocAt(AllocationStatusConfirmed, PaymentStatusPending, now.Add(d), now.Add(d+time.Hour))
	}

	assert.True(t, startingIn(time.Minute).StartsWithinLock(now))
	assert.True(t, startingIn(14*time.Minute).StartsWithinLock(now))

	// Ровно +15 минут входит в окно, +15 минут и секунда - уже нет
	assert.True(t, startingIn(LockWindow).StartsWithinLock(now))
	assert.False(t, startingIn(LockWindow+time.Second).StartsWithinLock(now))

	// Уже началась - не предстоящая
	assert.False(t, startingIn(0).StartsWithinLock(now))
	assert.False(t, startingIn(-time.Minute).StartsWithinLock(now))

	// Отмененная не учитывается
	cancelled := allocAt(AllocationStatusCancelled, PaymentStatusPending, now.Add(5*time.Minute), now.Add(time.Hour))
	assert.False(t, cancelled.StartsWithinLock(now))

	// Оплата не важна для подмораживания
	paid := allocAt(AllocationStatusConfirmed, PaymentStatusPaid, now.Add(5*time.Minute), now.Add(time.Hour))
	assert.True(t, paid.StartsWithinLock(now))
}

func TestBedAllocation_CustomerName(t *testing.T) {
	a := &BedAllocation{}
	assert.Equal(t, "Unknown", a.CustomerName())

	a.Customer = &Customer{Name: "Anna"}
	assert.Equal(t, "Anna", a.CustomerName())
}

func TestBed_Label(t *testing.T) {
	b := &Bed{BedNumber: "7"}
	assert.Equal(t, "Table 7", b.Label())

	name := "Lotus Room"
	b.DisplayName = &name
	assert.Equal(t, "Lotus Room", b.Label())
}
