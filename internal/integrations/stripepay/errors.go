package stripepay

import "errors"

var (
	// ErrCreateSession возвращается, если Stripe не создал платежную сессию
	ErrCreateSession = errors.New("stripepay: failed to create checkout session")

	// ErrGetSession возвращается, если Stripe не отдал платежную сессию
	ErrGetSession = errors.New("stripepay: failed to retrieve checkout session")

	// ErrSessionNotFound возвращается, если платежной сессии с таким id нет
	ErrSessionNotFound = errors.New("stripepay: checkout session not found")

	// ErrRefund возвращается, если Stripe не выполнил возврат
	ErrRefund = errors.New("stripepay: refund failed")

	// ErrExpireSession возвращается, если не удалось закрыть платежную сессию
	ErrExpireSession = errors.New("stripepay: failed to expire checkout session")

	// ErrInvalidSignature возвращается при неверной подписи вебхука
	ErrInvalidSignature = errors.New("stripepay: invalid webhook signature")

	// ErrInvalidPayload возвращается, если тело события не разбирается
	ErrInvalidPayload = errors.New("stripepay: invalid webhook payload")

	// ErrInvalidMetadata возвращается, если в сессии нет данных бронирования
	ErrInvalidMetadata = errors.New("stripepay: checkout session metadata is incomplete")
)
