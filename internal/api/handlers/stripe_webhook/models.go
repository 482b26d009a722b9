package stripe_webhook

import (
	completeCheckout "github.com/m04kA/SMC-StayBooking/internal/usecase/complete_checkout"
)

// signatureHeader заголовок с подписью события
const signatureHeader = "Stripe-Signature"

// maxPayloadBytes предел размера события
const maxPayloadBytes = 65536

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Received      bool   `json:"received"`
	Action        string `json:"action"`
	ReservationID string `json:"reservationId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeCheckout.Response) *WebhookResponse {
	return &WebhookResponse{
		Received:      true,
		Action:        string(resp.Action),
		ReservationID: resp.ReservationID,
	}
}
