package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// ComputeOccupancyFee доплата за взрослых сверх базовой вместимости.
// Дети до 12 лет учитываются только в лимите гостей, но не в цене
func ComputeOccupancyFee(adults, childrenUnder12, nights int, policy domain.OccupancyPolicy) float64 {
	if !policy.Enabled || nights <= 0 {
		return 0
	}

	extraAdults := adults - policy.BaseOccupancy
	if extraAdults <= 0 {
		return 0
	}

	return float64(extraAdults) * policy.PerAdultRate * float64(nights)
}

// ValidateGuests проверяет состав гостей перед оформлением.
// Лимит вместимости действует, если он задан, даже при выключенной доплате
func ValidateGuests(guests domain.GuestCounts, policy domain.OccupancyPolicy) error {
	if guests.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrTooFewAdults, domain.MinAdults)
	}
	if guests.ChildrenUnder12 < 0 {
		return fmt.Errorf("%w: children count must not be negative", ErrInvalidGuestCount)
	}
	if policy.MaxOccupancy > 0 && guests.Total() > policy.MaxOccupancy {
		return fmt.Errorf("%w: %d guests, maximum is %d", ErrOccupancyExceeded, guests.Total(), policy.MaxOccupancy)
	}
	return nil
}
