package domain

import "time"

// AllocationStatus represents the lifecycle status of a bed allocation
type AllocationStatus string

const (
	AllocationStatusPending    AllocationStatus = "pending"
	AllocationStatusConfirmed  AllocationStatus = "confirmed"
	AllocationStatusInProgress AllocationStatus = "in_progress"
	AllocationStatusCompleted  AllocationStatus = "completed"
	AllocationStatusCancelled  AllocationStatus = "cancelled"
)

// PaymentStatus represents the payment status of an allocation
// Выставляется подсистемой инвойсов, этот сервис его только читает
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// BedAllocation represents a reservation of a bed by a customer for a package
//
// Инвариант: StartTime < EndTime. Две неотменённые аллокации одной кровати
// не могут пересекаться по полузакрытому интервалу [StartTime, EndTime) -
// это гарантируется на этапе создания (create_allocation в сериализуемой
// транзакции) и используется всеми проверками конфликтов.
type BedAllocation struct {
	ID            int64
	BookingNumber string
	CustomerID    int64
	BedID         int64
	PackageID     int64
	StartTime     time.Time
	EndTime       time.Time
	Status        AllocationStatus
	PaymentStatus PaymentStatus
	Notes         *string

	// Связанные сущности, заполняются при загрузке с деталями
	Customer *Customer
	Package  *Package

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the half-open time range [StartTime, EndTime) of the allocation
func (a *BedAllocation) Range() TimeRange {
	return TimeRange{Start: a.StartTime, End: a.EndTime}
}

// IsCancelled returns true if the allocation has been cancelled
func (a *BedAllocation) IsCancelled() bool {
	return a.Status == AllocationStatusCancelled
}

// IsTerminal returns true if the allocation is in a terminal state
func (a *BedAllocation) IsTerminal() bool {
	return a.Status == AllocationStatusCompleted || a.Status == AllocationStatusCancelled
}

// BlocksBed returns true if the allocation counts for conflict detection
func (a *BedAllocation) BlocksBed() bool {
	return a.Status != AllocationStatusCancelled
}

// Covers returns true if t falls inside [StartTime, EndTime)
func (a *BedAllocation) Covers(t time.Time) bool {
	return !a.StartTime.After(t) && a.EndTime.After(t)
}

// OccupiesAt returns true if the allocation makes its bed occupied at now:
// оплаченная confirmed/in_progress аллокация, чьё окно покрывает текущий момент.
// Неоплаченная бронь кровать НЕ занимает - стол остаётся доступным для walk-in
func (a *BedAllocation) OccupiesAt(now time.Time) bool {
	if a.Status != AllocationStatusConfirmed && a.Status != AllocationStatusInProgress {
		return false
	}
	if a.PaymentStatus != PaymentStatusPaid {
		return false
	}
	return a.Covers(now)
}

// StartsWithinLock returns true if the allocation starts within the lock window:
// now < StartTime <= now + LockWindow. Оплата здесь намеренно не проверяется -
// любая активная бронь «подмораживает» стол перед своим началом
func (a *BedAllocation) StartsWithinLock(now time.Time) bool {
	if a.IsCancelled() {
		return false
	}
	return a.StartTime.After(now) && !a.StartTime.After(now.Add(LockWindow))
}

// CustomerName returns the customer's name or a fallback when not loaded
func (a *BedAllocation) CustomerName() string {
	if a.Customer != nil && a.Customer.Name != "" {
		return a.Customer.Name
	}
	return "Unknown"
}
