package session

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
)

// State состояние сессии бронирования
type State string

const (
	StateSelectingDates       State = "selecting_dates"
	StatePriced               State = "priced"
	StateRejected             State = "rejected"
	StateConflictDetected     State = "conflict_detected"
	StateEnteringGuestDetails State = "entering_guest_details"
	StateSubmittingCheckout   State = "submitting_checkout"
	StateRedirectedToPayment  State = "redirected_to_payment"
)

// DefaultAdults число взрослых в новой сессии
const DefaultAdults = 2

// GuestDetails данные гостя из формы
type GuestDetails struct {
	Name            string
	Email           string
	Phone           string
	Adults          int
	ChildrenUnder12 int
}

// Counts состав гостей для расчета цены
func (g GuestDetails) Counts() domain.GuestCounts {
	return domain.GuestCounts{Adults: g.Adults, ChildrenUnder12: g.ChildrenUnder12}
}

// CheckoutRequest тело запроса на создание платежной сессии.
// Даты в формате YYYY-MM-DD, суммы в валюте (не в центах)
type CheckoutRequest struct {
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	Adults          int     `json:"adults"`
	ChildrenUnder12 int     `json:"childrenUnder12"`
	TotalAmount     float64 `json:"totalAmount"`
	WeekdayNights   int     `json:"weekdayNights"`
	WeekendNights   int     `json:"weekendNights"`
	CleaningFee     float64 `json:"cleaningFee"`
	OccupancyFee    float64 `json:"occupancyFee"`
}

// CheckoutResult ответ платежного провайдера
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// View снимок сессии для отображения
type View struct {
	State       State
	Selection   domain.DateRange
	Quote       pricing.Quote
	Guest       GuestDetails
	Notice      domain.UnavailableReason
	Error       error
	RedirectURL string
}

// CheckoutFailed последняя отправка не удалась: форма гостя открыта снова, ошибка в Error
func (v View) CheckoutFailed() bool {
	return v.State == StateEnteringGuestDetails && v.Error != nil
}
