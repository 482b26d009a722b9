package quote_stay

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrInvalidGuests возвращается при недопустимом составе гостей
	ErrInvalidGuests = errors.New("quote_stay: invalid guest counts")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_stay: internal error")
)
