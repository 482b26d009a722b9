package pricing

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Rejection почему диапазон не оценивается. Это не ошибка, а подсказка гостю
type Rejection string

const (
	RejectionNone       Rejection = ""
	RejectionIncomplete Rejection = "incomplete"
	RejectionEmpty      Rejection = "empty_range"
	RejectionTooShort   Rejection = "below_minimum_nights"
	RejectionTooLong    Rejection = "above_maximum_nights"
)

// CheckStayLength проверяет диапазон и длину проживания без расчета цены
func CheckStayLength(r domain.DateRange, cfg *domain.BookingConfig) Rejection {
	if !r.IsComplete() {
		return RejectionIncomplete
	}

	nights := r.Nights()
	if nights <= 0 {
		return RejectionEmpty
	}
	if nights < cfg.MinimumNights {
		return RejectionTooShort
	}
	if maxNights, ok := cfg.MaxNights(); ok && nights > maxNights {
		return RejectionTooLong
	}
	return RejectionNone
}

// PriceStay считает стоимость проживания. nil - диапазон не оценивается (см. CheckStayLength).
// Функция чистая: одинаковые аргументы дают одинаковый результат
func PriceStay(r domain.DateRange, cfg *domain.BookingConfig, guests domain.GuestCounts) *domain.StayBreakdown {
	if CheckStayLength(r, cfg) != RejectionNone {
		return nil
	}

	breakdown := &domain.StayBreakdown{
		Nights:      r.Nights(),
		CleaningFee: cfg.CleaningFee,
	}

	r.EachNight(func(night types.Date) {
		breakdown.NightlyTotal += ResolveNightlyRate(night, cfg)

		// Счетчики по календарю, даже если цену ночи переопределил сезонный тариф
		if night.IsWeekend() {
			breakdown.WeekendNights++
		} else {
			breakdown.WeekdayNights++
		}
	})

	breakdown.OccupancyFee = ComputeOccupancyFee(guests.Adults, guests.ChildrenUnder12, breakdown.Nights, cfg.OccupancyPricing)
	breakdown.Total = breakdown.NightlyTotal + breakdown.CleaningFee + breakdown.OccupancyFee

	return breakdown
}

// NightlyLine строка детализации для отображения: дата и примененный тариф
type NightlyLine struct {
	Night types.Date `json:"night"`
	Rate  float64    `json:"rate"`
	Label string     `json:"label,omitempty"`
}

// NightlyLines цена каждой ночи с названием сезонного тарифа, если он применился
func NightlyLines(r domain.DateRange, cfg *domain.BookingConfig) []NightlyLine {
	lines := make([]NightlyLine, 0, max(r.Nights(), 0))
	r.EachNight(func(night types.Date) {
		line := NightlyLine{Night: night, Rate: ResolveNightlyRate(night, cfg)}
		if period, ok := MatchingCustomRate(night, cfg); ok {
			line.Label = period.Label
		}
		lines = append(lines, line)
	})
	return lines
}
