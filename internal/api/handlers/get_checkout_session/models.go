package get_checkout_session

import (
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// SessionQuery параметры запроса
type SessionQuery struct {
	SessionID string `json:"session_id" validate:"required,startswith=cs_,max=255"`
}

// SessionResponse HTTP response model. Контакты гостя не отдаются
type SessionResponse struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	AmountTotal     float64    `json:"amountTotal"`
	Currency        string     `json:"currency"`
	ReservationID   string     `json:"reservationId,omitempty"`
	CheckInDate     types.Date `json:"checkInDate"`
	CheckOutDate    types.Date `json:"checkOutDate"`
	GuestName       string     `json:"guestName,omitempty"`
	Adults          int        `json:"adults,omitempty"`
	ChildrenUnder12 int        `json:"childrenUnder12,omitempty"`
	Nights          int        `json:"nights,omitempty"`
}

// FromSessionStatus конвертирует ответ провайдера в HTTP response
func FromSessionStatus(s *stripepay.SessionStatus) *SessionResponse {
	resp := &SessionResponse{
		ID:            s.ID,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		AmountTotal:   s.AmountTotal,
		Currency:      s.Currency,
		ReservationID: s.ReservationID,
	}
	if s.Stay != nil {
		resp.CheckInDate = s.Stay.CheckInDate
		resp.CheckOutDate = s.Stay.CheckOutDate
		resp.GuestName = s.Stay.GuestName
		resp.Adults = s.Stay.Adults
		resp.ChildrenUnder12 = s.Stay.ChildrenUnder12
		resp.Nights = s.Stay.Breakdown.Nights
	}
	return resp
}
