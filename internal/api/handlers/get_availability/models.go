package get_availability

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	getAvailability "github.com/m04kA/SMC-StayBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Today         types.Date             `json:"today"`
	From          types.Date             `json:"from"`
	To            types.Date             `json:"to"`
	MinimumNights int                    `json:"minimumNights"`
	MaximumNights *int                   `json:"maximumNights,omitempty"`
	DisabledDates []domain.DisabledDay   `json:"disabledDates"`
	Spans         []pricing.DisabledSpan `json:"spans"`
}

// parseBound разбирает необязательный параметр запроса
func parseBound(value string) (types.Date, error) {
	if value == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(value)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	disabled := resp.DisabledDates
	if disabled == nil {
		disabled = []domain.DisabledDay{}
	}

	return &AvailabilityResponse{
		Today:         resp.Today,
		From:          resp.From,
		To:            resp.To,
		MinimumNights: resp.MinimumNights,
		MaximumNights: resp.MaximumNights,
		DisabledDates: disabled,
		Spans:         resp.Spans,
	}
}
