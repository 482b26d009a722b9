package pricing

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// ResolveNightlyRate цена ночи, начинающейся в night.
// Приоритет: первый подходящий сезонный тариф (по порядку в списке),
// затем тариф дня недели, затем выходной/будний базовый тариф
func ResolveNightlyRate(night types.Date, cfg *domain.BookingConfig) float64 {
	if period, ok := MatchingCustomRate(night, cfg); ok {
		return period.Rate
	}

	if rate, ok := cfg.DayOfWeekRates.For(night.Weekday()); ok {
		return rate
	}

	if night.IsWeekend() {
		return cfg.WeekendRate
	}
	return cfg.WeekdayRate
}

// MatchingCustomRate первый сезонный тариф, в который попадает night
func MatchingCustomRate(night types.Date, cfg *domain.BookingConfig) (domain.CustomRatePeriod, bool) {
	for _, period := range cfg.CustomRates {
		if period.Contains(night) {
			return period, true
		}
	}
	return domain.CustomRatePeriod{}, false
}
