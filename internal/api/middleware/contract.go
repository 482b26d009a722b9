package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/infra/idempotency"
	"github.com/m04kA/SMC-StayBooking/internal/service/auth"
)

// TokenParser проверка токена администратора
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// HTTPMetrics сбор метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// IdempotencyStore хранилище ключей Idempotency-Key
type IdempotencyStore interface {
	Reserve(ctx context.Context, key, requestHash string) (*idempotency.Record, bool, error)
	Complete(ctx context.Context, key, requestHash string, status int, body []byte) error
	Release(ctx context.Context, key string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
