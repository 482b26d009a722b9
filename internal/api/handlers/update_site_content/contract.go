package update_site_content

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/service/content/models"
)

type ContentService interface {
	Replace(ctx context.Context, next *domain.SiteContent) (*models.AdminContent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
