package stripepay

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Типы событий вебхука, которые обрабатывает сервис
const (
	EventCheckoutCompleted    = "checkout.session.completed"
	EventCheckoutExpired      = "checkout.session.expired"
	EventPaymentSucceeded     = "payment_intent.succeeded"
	EventPaymentFailed        = "payment_intent.payment_failed"
	refundReasonByCustomer    = "requested_by_customer"
	paymentStatusPaid         = "paid"
	paymentStatusNoneRequired = "no_payment_required"
)

// Ключи метаданных платежной сессии. Совпадают с полями запроса на оплату
const (
	metaReservationID   = "reservationId"
	metaCheckInDate     = "checkInDate"
	metaCheckOutDate    = "checkOutDate"
	metaGuestName       = "guestName"
	metaGuestEmail      = "guestEmail"
	metaGuestPhone      = "guestPhone"
	metaAdults          = "adults"
	metaChildrenUnder12 = "childrenUnder12"
	metaTotalAmount     = "totalAmount"
	metaWeekdayNights   = "weekdayNights"
	metaWeekendNights   = "weekendNights"
	metaCleaningFee     = "cleaningFee"
	metaOccupancyFee    = "occupancyFee"
)

// StayDetails данные проживания, которые передаются в платежную сессию и возвращаются вебхуком
type StayDetails struct {
	ReservationID   string
	CheckInDate     types.Date
	CheckOutDate    types.Date
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Adults          int
	ChildrenUnder12 int
	Breakdown       domain.StayBreakdown
}

// CheckoutSession созданная платежная сессия
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// SessionStatus состояние платежной сессии для страницы после оплаты.
// Stay заполнен, только если сессию создал этот сервис
type SessionStatus struct {
	ID            string
	Status        string // open | complete | expired
	PaymentStatus string // paid | unpaid | no_payment_required
	AmountTotal   float64
	Currency      string
	ReservationID string
	Stay          *StayDetails
}

// CompletedCheckout оплаченная сессия
type CompletedCheckout struct {
	SessionID       string
	PaymentIntentID string
	CustomerID      string
	Paid            bool
	Stay            StayDetails
}

// ExpiredCheckout сессия, которую гость не оплатил
type ExpiredCheckout struct {
	SessionID     string
	ReservationID string
}

// PaymentFailure неуспешная попытка оплаты
type PaymentFailure struct {
	PaymentIntentID string
	Message         string
}

// Event разобранное событие вебхука. Заполнено не больше одного поля с данными
type Event struct {
	ID            string
	Type          string
	Completed     *CompletedCheckout
	Expired       *ExpiredCheckout
	PaymentFailed *PaymentFailure
}
