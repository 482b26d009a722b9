package get_checkout_session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
)

const (
	msgSessionNotFound    = "checkout session not found"
	msgPaymentUnavailable = "payment provider is unavailable, please try again"
)

type Handler struct {
	payments PaymentProvider
	logger   Logger
}

func NewHandler(payments PaymentProvider, logger Logger) *Handler {
	return &Handler{
		payments: payments,
		logger:   logger,
	}
}

// Handle GET /api/v1/checkout/session?session_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := SessionQuery{SessionID: strings.TrimSpace(r.URL.Query().Get("session_id"))}
	if err := handlers.ValidateStruct(query); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	status, err := h.payments.GetCheckoutSession(query.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, stripepay.ErrSessionNotFound):
			h.logger.Warn("GET /checkout/session - Session not found: session_id=%s", query.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /checkout/session - Failed to retrieve session: session_id=%s, error=%v", query.SessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionStatus(status))
}
