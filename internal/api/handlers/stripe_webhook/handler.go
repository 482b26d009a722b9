package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	completeCheckout "github.com/m04kA/SMC-StayBooking/internal/usecase/complete_checkout"
)

const (
	msgMissingSignature = "missing Stripe-Signature header"
	msgUnreadableBody   = "unable to read request body"
	msgInvalidSignature = "invalid signature"
	msgInvalidPayload   = "invalid event payload"
)

type Handler struct {
	useCase CompleteCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CompleteCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stripe/webhook
// Тело читается как есть: подпись считается по сырым байтам.
// 5xx заставляет провайдера повторить доставку, поэтому он отдается только при внутренних ошибках
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		h.logger.Warn("POST /stripe/webhook - Missing signature header")
		handlers.RespondBadRequest(w, msgMissingSignature)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /stripe/webhook - Failed to read body: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgUnreadableBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeCheckout.Request{Payload: payload, Signature: signature})
	if err != nil {
		switch {
		case errors.Is(err, completeCheckout.ErrInvalidSignature):
			h.logger.Warn("POST /stripe/webhook - Invalid signature: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)
		case errors.Is(err, completeCheckout.ErrInvalidPayload):
			h.logger.Warn("POST /stripe/webhook - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)
		default:
			h.logger.Error("POST /stripe/webhook - Failed to process event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stripe/webhook - Event %s (%s) handled: action=%s",
		result.EventID, result.EventType, result.Action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
