package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// Record сохраненный результат запроса с заголовком Idempotency-Key
type Record struct {
	RequestHash string          `json:"request_hash"`
	Completed   bool            `json:"completed"`
	Status      int             `json:"status,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// Store хранит ключи идемпотентности в redis с TTL
type Store struct {
	client RedisClient
	ttl    time.Duration
}

// NewStore создает хранилище. ttl - сколько помнить ключ
func NewStore(client RedisClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Reserve занимает ключ за запросом. Если ключ уже занят, возвращает существующую запись
func (s *Store) Reserve(ctx context.Context, key, requestHash string) (*Record, bool, error) {
	placeholder, err := json.Marshal(Record{RequestHash: requestHash})
	if err != nil {
		return nil, false, fmt.Errorf("%w: encode placeholder: %v", ErrCorruptRecord, err)
	}

	reserved, err := s.client.SetNX(ctx, keyPrefix+key, placeholder, s.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: SETNX %s: %v", ErrStore, key, err)
	}
	if reserved {
		return nil, true, nil
	}

	existing, err := s.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Get возвращает запись или nil, если ключа нет
func (s *Store) Get(ctx context.Context, key string) (*Record, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrStore, key, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return &rec, nil
}

// Complete сохраняет ответ для повторов
func (s *Store) Complete(ctx context.Context, key, requestHash string, status int, body []byte) error {
	rec := Record{RequestHash: requestHash, Completed: true, Status: status}
	if json.Valid(body) {
		rec.Body = body
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode record: %v", ErrCorruptRecord, err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SET %s: %v", ErrStore, key, err)
	}
	return nil
}

// Release освобождает ключ, чтобы запрос можно было повторить (после ошибки сервера)
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: DEL %s: %v", ErrStore, key, err)
	}
	return nil
}
