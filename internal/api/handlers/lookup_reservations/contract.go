package lookup_reservations

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

type ReservationService interface {
	Lookup(ctx context.Context, email string) ([]models.GuestReservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
