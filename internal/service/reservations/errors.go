package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAccessDenied возвращается, если email гостя не совпадает с бронированием
	ErrAccessDenied = errors.New("email does not match reservation")

	// ErrRefundFailed возвращается, если возврат не прошел. Бронирование при этом не удаляется
	ErrRefundFailed = errors.New("refund failed, reservation kept")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
