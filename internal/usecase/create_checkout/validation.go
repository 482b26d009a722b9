package create_checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.GuestEmail) == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.GuestPhone) == "" {
		return fmt.Errorf("%w: guestPhone is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkInDate and checkOutDate are required", ErrInvalidInput)
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidInput)
	}

	if req.TotalAmount <= 0 {
		return fmt.Errorf("%w: totalAmount must be positive", ErrInvalidInput)
	}

	return nil
}

// matchesBreakdown сверяет суммы и счетчики ночей клиента с расчетом сервера
func matchesBreakdown(req *Request, b *domain.StayBreakdown) bool {
	return sameAmount(req.TotalAmount, b.Total) &&
		sameAmount(req.CleaningFee, b.CleaningFee) &&
		sameAmount(req.OccupancyFee, b.OccupancyFee) &&
		req.WeekdayNights == b.WeekdayNights &&
		req.WeekendNights == b.WeekendNights
}

func sameAmount(a, b float64) bool {
	return math.Abs(a-b) < amountTolerance
}
