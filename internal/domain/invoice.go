package domain

// InvoiceStatus represents the status of an invoice
//
// Инвойсинг - внешняя подсистема; этот сервис выполняет по таблице invoices
// только read-only проверку для исключения из автоотмены, поэтому своей
// доменной модели инвойса здесь нет - только словарь статусов
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCompleted InvoiceStatus = "completed"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusVoided    InvoiceStatus = "voided"
)

// InvoicePaymentStatus represents the payment status of an invoice
type InvoicePaymentStatus string

const (
	InvoicePaymentStatusUnpaid   InvoicePaymentStatus = "unpaid"
	InvoicePaymentStatusPartial  InvoicePaymentStatus = "partial"
	InvoicePaymentStatusPaid     InvoicePaymentStatus = "paid"
	InvoicePaymentStatusRefunded InvoicePaymentStatus = "refunded"
)

// QualifyingInvoiceStatuses статусы инвойсов, освобождающие confirmed-аллокацию
// от автоотмены: наличие такого инвойса с payment_status != unpaid означает,
// что оплата идёт и бронь отменять нельзя
var QualifyingInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusPending,
	InvoiceStatusCompleted,
}
