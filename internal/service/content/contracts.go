package content

import (
	"context"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// ContentRepository интерфейс хранилища документа сайта
type ContentRepository interface {
	Get(ctx context.Context) (*domain.SiteContent, error)
	GetForUpdate(ctx context.Context) (*domain.SiteContent, error)
	Update(ctx context.Context, content *domain.SiteContent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
