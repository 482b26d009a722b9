package get_site_content

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

type ContentService interface {
	GetPublic(ctx context.Context) (*domain.PublicSiteContent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
