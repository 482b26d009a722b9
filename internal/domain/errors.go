package domain

import "errors"

var (
	ErrInvalidBookingConfig = errors.New("invalid booking config")
	ErrReservationNotFound  = errors.New("reservation not found")
)
