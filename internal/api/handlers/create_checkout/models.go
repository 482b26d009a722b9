package create_checkout

import (
	"strings"

	createCheckout "github.com/m04kA/SMC-StayBooking/internal/usecase/create_checkout"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// CheckoutRequest HTTP request model. Суммы клиента сверяются с расчетом сервера
type CheckoutRequest struct {
	CheckInDate     string  `json:"checkInDate" validate:"required,date"`
	CheckOutDate    string  `json:"checkOutDate" validate:"required,date"`
	GuestName       string  `json:"guestName" validate:"required,max=200"`
	GuestEmail      string  `json:"guestEmail" validate:"required,email"`
	GuestPhone      string  `json:"guestPhone" validate:"max=50"`
	Adults          int     `json:"adults" validate:"min=1"`
	ChildrenUnder12 int     `json:"childrenUnder12" validate:"min=0"`
	TotalAmount     float64 `json:"totalAmount" validate:"gt=0"`
	WeekdayNights   int     `json:"weekdayNights" validate:"min=0"`
	WeekendNights   int     `json:"weekendNights" validate:"min=0"`
	CleaningFee     float64 `json:"cleaningFee" validate:"min=0"`
	OccupancyFee    float64 `json:"occupancyFee" validate:"min=0"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	SessionID     string `json:"sessionId"`
	URL           string `json:"url"`
	ReservationID string `json:"reservationId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case. Даты уже проверены валидатором
func (r *CheckoutRequest) ToUseCaseRequest() (*createCheckout.Request, error) {
	checkIn, err := types.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := types.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestName:       strings.TrimSpace(r.GuestName),
		GuestEmail:      strings.TrimSpace(r.GuestEmail),
		GuestPhone:      strings.TrimSpace(r.GuestPhone),
		Adults:          r.Adults,
		ChildrenUnder12: r.ChildrenUnder12,
		TotalAmount:     r.TotalAmount,
		WeekdayNights:   r.WeekdayNights,
		WeekendNights:   r.WeekendNights,
		CleaningFee:     r.CleaningFee,
		OccupancyFee:    r.OccupancyFee,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:     resp.SessionID,
		URL:           resp.URL,
		ReservationID: resp.ReservationID,
	}
}
