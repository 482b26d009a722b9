package update_custom_rates

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

type ContentService interface {
	SetCustomRates(ctx context.Context, text string) ([]domain.CustomRatePeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
