package bookingapi

const (
	checkoutPath    = "/api/v1/checkout"
	siteContentPath = "/api/v1/site-content"

	headerIdempotencyKey = "Idempotency-Key"

	// попытки одной отправки при сетевых ошибках
	maxCheckoutAttempts = 2
)

// Коды ошибок сервиса в ответах 409
const (
	codeDatesUnavailable = "dates_unavailable"
	codePriceMismatch    = "price_mismatch"
	codeRequestInFlight  = "request_in_flight"
)

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
