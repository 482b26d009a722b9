package create_checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrInvalidGuests возвращается при недопустимом составе гостей
	ErrInvalidGuests = errors.New("create_checkout: invalid guest counts")

	// ErrStayNotAllowed возвращается, если длина проживания не проходит правила
	ErrStayNotAllowed = errors.New("create_checkout: stay length is not allowed")

	// ErrDatesNoLongerAvailable возвращается, если даты заняли до оформления
	ErrDatesNoLongerAvailable = errors.New("dates no longer available")

	// ErrPriceMismatch возвращается, если сумма клиента не совпала с расчетом сервера
	ErrPriceMismatch = errors.New("create_checkout: price has changed, please review your booking")

	// ErrPaymentProvider возвращается, если платежная сессия не создана
	ErrPaymentProvider = errors.New("create_checkout: payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
