package quote_stay

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	quoteStay "github.com/m04kA/SMC-StayBooking/internal/usecase/quote_stay"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// defaultAdults состав по умолчанию, как в форме бронирования
const defaultAdults = 2

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CheckInDate     string `json:"checkInDate" validate:"required,date"`
	CheckOutDate    string `json:"checkOutDate" validate:"required,date"`
	Adults          *int   `json:"adults,omitempty" validate:"omitempty,min=1"`
	ChildrenUnder12 int    `json:"childrenUnder12" validate:"min=0"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CheckInDate  types.Date            `json:"checkInDate"`
	CheckOutDate types.Date            `json:"checkOutDate"`
	Bookable     bool                  `json:"bookable"`
	Breakdown    *domain.StayBreakdown `json:"breakdown,omitempty"`
	Nightly      []pricing.NightlyLine `json:"nightly,omitempty"`
	Rejection    string                `json:"rejection,omitempty"`
	Conflict     string                `json:"conflict,omitempty"`
	Message      string                `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteStay.Request, error) {
	checkIn, err := types.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := types.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	adults := defaultAdults
	if r.Adults != nil {
		adults = *r.Adults
	}

	return &quoteStay.Request{
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          adults,
		ChildrenUnder12: r.ChildrenUnder12,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		CheckInDate:  resp.CheckIn,
		CheckOutDate: resp.CheckOut,
		Bookable:     resp.Bookable,
		Breakdown:    resp.Breakdown,
		Nightly:      resp.Nightly,
		Rejection:    string(resp.Rejection),
		Conflict:     string(resp.Conflict),
		Message:      resp.Message,
	}
}
