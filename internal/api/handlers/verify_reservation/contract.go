package verify_reservation

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

type ReservationService interface {
	Verify(ctx context.Context, id, email string) (*models.VerifyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
