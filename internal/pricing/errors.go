package pricing

import "errors"

var (
	ErrTooFewAdults      = errors.New("pricing: too few adults")
	ErrInvalidGuestCount = errors.New("pricing: invalid guest count")
	ErrOccupancyExceeded = errors.New("pricing: maximum occupancy exceeded")
)
