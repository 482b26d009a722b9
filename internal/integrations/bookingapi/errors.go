package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrPriceChanged возвращается, если сервер насчитал другую сумму
	ErrPriceChanged = errors.New("bookingapi client: price has changed")

	// ErrRequestInFlight возвращается, если та же отправка еще обрабатывается
	ErrRequestInFlight = errors.New("bookingapi client: checkout request is still in progress")
)
