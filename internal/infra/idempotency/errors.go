package idempotency

import "errors"

var (
	// ErrStore возвращается при ошибках обращения к redis
	ErrStore = errors.New("idempotency.store: redis error")

	// ErrCorruptRecord возвращается, если запись в redis не разбирается
	ErrCorruptRecord = errors.New("idempotency.store: corrupt record")
)
