package update_custom_rates

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// UpdateCustomRatesRequest HTTP request model.
// Одна строка на период: "YYYY-MM-DD to YYYY-MM-DD | цена | название"
type UpdateCustomRatesRequest struct {
	Text string `json:"text"`
}

// CustomRatesResponse HTTP response model
type CustomRatesResponse struct {
	CustomRates []domain.CustomRatePeriod `json:"customRates"`
}

func FromServiceResponse(periods []domain.CustomRatePeriod) *CustomRatesResponse {
	if periods == nil {
		periods = []domain.CustomRatePeriod{}
	}
	return &CustomRatesResponse{CustomRates: periods}
}
