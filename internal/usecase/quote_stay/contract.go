package quote_stay

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// ContentRepository интерфейс хранилища документа сайта
type ContentRepository interface {
	Get(ctx context.Context) (*domain.SiteContent, error)
}

// Metrics счетчик расчетов цены
type Metrics interface {
	IncQuote(result string)
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
