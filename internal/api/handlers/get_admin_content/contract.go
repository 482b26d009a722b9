package get_admin_content

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/service/content/models"
)

type ContentService interface {
	GetFull(ctx context.Context) (*models.AdminContent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
