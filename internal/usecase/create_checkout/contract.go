package create_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
)

// ContentRepository интерфейс хранилища документа сайта
type ContentRepository interface {
	GetForUpdate(ctx context.Context) (*domain.SiteContent, error)
	Update(ctx context.Context, content *domain.SiteContent) error
}

// PaymentProvider интерфейс платежного провайдера
type PaymentProvider interface {
	CreateCheckoutSession(stay stripepay.StayDetails) (*stripepay.CheckoutSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики оформления
type Metrics interface {
	IncCheckout(result string)
	IncConflict(stage string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
