package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/infra/idempotency"
)

// IdempotencyHeader заголовок с ключом повтора
const IdempotencyHeader = "Idempotency-Key"

const (
	maxIdempotentBody = 1 << 20
	maxKeyLength      = 255

	msgKeyTooLong     = "Idempotency-Key is too long"
	msgUnreadableBody = "failed to read request body"
	msgKeyReused      = "Idempotency-Key was already used with a different request"
	msgInFlight       = "a request with this Idempotency-Key is still in progress"
)

// Idempotency повторяет сохраненный ответ для запроса с тем же Idempotency-Key.
// Без заголовка запрос проходит как есть. Сохраняются только успешные ответы:
// после 4xx и 5xx ключ освобождается и запрос можно повторить.
// Если хранилище недоступно, запрос обрабатывается без защиты от повторов
func Idempotency(store IdempotencyStore, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" || store == nil {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxKeyLength {
				handlers.RespondBadRequest(w, msgKeyTooLong)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxIdempotentBody))
			if err != nil {
				handlers.RespondBadRequest(w, msgUnreadableBody)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			hash := requestHash(r, body)
			existing, reserved, err := store.Reserve(r.Context(), key, hash)
			if err != nil {
				logger.Warn("Idempotency: store unavailable, serving %s %s without replay protection: %v",
					r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			if !reserved {
				replay(w, existing, hash)
				return
			}

			rec := newStatusRecorder(w, true)
			next.ServeHTTP(rec, r)

			// запрос мог быть отменен клиентом, а результат сохранить все равно нужно
			ctx := context.WithoutCancel(r.Context())
			if rec.status >= http.StatusBadRequest {
				if err := store.Release(ctx, key); err != nil {
					logger.Error("Idempotency: failed to release key: %v", err)
				}
				return
			}
			if err := store.Complete(ctx, key, hash, rec.status, rec.body.Bytes()); err != nil {
				logger.Error("Idempotency: failed to store response: %v", err)
			}
		})
	}
}

// replay отвечает на повтор: сохраненным ответом, конфликтом или отказом, пока первый запрос не завершен
func replay(w http.ResponseWriter, existing *idempotency.Record, hash string) {
	switch {
	case existing == nil:
		handlers.RespondErrorCode(w, http.StatusConflict, handlers.CodeRequestInFlight, msgInFlight)
	case existing.RequestHash != hash:
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgKeyReused)
	case !existing.Completed:
		handlers.RespondErrorCode(w, http.StatusConflict, handlers.CodeRequestInFlight, msgInFlight)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Idempotent-Replayed", "true")
		w.WriteHeader(existing.Status)
		_, _ = w.Write(existing.Body)
	}
}

func requestHash(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method + ":" + r.URL.Path + ":"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
