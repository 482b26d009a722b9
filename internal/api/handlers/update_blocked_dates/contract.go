package update_blocked_dates

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

type ContentService interface {
	SetBlockedDates(ctx context.Context, text string) ([]domain.BlockedRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
