package domain

import "time"

// Business hours and slot grid
const (
	// BusinessOpenHour час открытия салона (локальное время)
	BusinessOpenHour = 8
	// BusinessCloseHour час закрытия салона
	BusinessCloseHour = 22
	// SlotDurationMinutes шаг сетки расписания
	SlotDurationMinutes = 30
)

// Lock window
const (
	// LockWindowMinutes за сколько минут до начала брони стол помечается booked_soon
	// и по истечении скольки минут после начала неоплаченная бронь автоотменяется
	LockWindowMinutes = 15
	LockWindow        = LockWindowMinutes * time.Minute
)

// Auto-cancel audit note
const (
	// AutoCancelNote текст, дописываемый в notes при автоотмене
	AutoCancelNote = "Auto-cancelled: No payment received within 15 minutes."
	// NotesSeparator разделитель при дописывании к существующим notes
	NotesSeparator = " | "
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default bed attributes
const (
	DefaultBedType = "standard"
)

// OccupyingStatuses статусы аллокаций, способных сделать кровать occupied
// (при условии оплаты и попадания текущего момента в окно)
var OccupyingStatuses = []AllocationStatus{
	AllocationStatusConfirmed,
	AllocationStatusInProgress,
}
