package complete_checkout

import "errors"

var (
	// ErrInvalidSignature возвращается при неверной подписи вебхука
	ErrInvalidSignature = errors.New("complete_checkout: invalid webhook signature")

	// ErrInvalidPayload возвращается, если событие не удалось разобрать
	ErrInvalidPayload = errors.New("complete_checkout: invalid webhook payload")

	// ErrInternal возвращается при внутренних ошибках usecase. Провайдер повторит доставку
	ErrInternal = errors.New("complete_checkout: internal error")
)
