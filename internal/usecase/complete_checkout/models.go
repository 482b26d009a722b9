package complete_checkout

// Action что сделано по событию
type Action string

const (
	ActionConfirmed        Action = "confirmed"
	ActionCreated          Action = "created"
	ActionAlreadyConfirmed Action = "already_confirmed"
	ActionRefundedConflict Action = "refunded_conflict"
	ActionReleased         Action = "released"
	ActionUnpaid           Action = "unpaid"
	ActionLogged           Action = "logged"
	ActionIgnored          Action = "ignored"
)

const (
	conflictStage  = "webhook"
	removedExpired = "checkout_expired"

	// Заметка к брони о составе гостей
	notesFormat        = "Adults: %d, Children (under 12): %d"
	notesOccupancyPart = ", Occupancy Fee: $%.2f"
)

// Request тело вебхука и заголовок подписи
type Request struct {
	Payload   []byte
	Signature string
}

// Response итог обработки события
type Response struct {
	EventID       string `json:"eventId"`
	EventType     string `json:"eventType"`
	Action        Action `json:"action"`
	ReservationID string `json:"reservationId,omitempty"`
}
