package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	createCheckout "github.com/m04kA/SMC-StayBooking/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDatesUnavailable   = "dates no longer available"
	msgPriceMismatch      = "price has changed, please review your booking"
	msgStayNotAllowed     = "selected stay length is not allowed"
	msgPaymentUnavailable = "payment provider is unavailable, please try again"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("POST /checkout - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /checkout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrDatesNoLongerAvailable):
			h.logger.Warn("POST /checkout - Dates no longer available: check_in=%s, check_out=%s",
				req.CheckInDate, req.CheckOutDate)
			handlers.RespondErrorCode(w, http.StatusConflict, handlers.CodeDatesUnavailable, msgDatesUnavailable)

		case errors.Is(err, createCheckout.ErrPriceMismatch):
			h.logger.Warn("POST /checkout - Price mismatch: check_in=%s, check_out=%s, total=%.2f",
				req.CheckInDate, req.CheckOutDate, req.TotalAmount)
			handlers.RespondErrorCode(w, http.StatusConflict, handlers.CodePriceMismatch, msgPriceMismatch)

		case errors.Is(err, createCheckout.ErrStayNotAllowed):
			h.logger.Warn("POST /checkout - Stay not allowed: %v", err)
			handlers.RespondBadRequest(w, msgStayNotAllowed)

		case errors.Is(err, createCheckout.ErrInvalidGuests), errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createCheckout.ErrPaymentProvider):
			h.logger.Error("POST /checkout - Payment provider failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /checkout - Failed to create checkout: check_in=%s, check_out=%s, error=%v",
				req.CheckInDate, req.CheckOutDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Checkout session created: reservation_id=%s, session_id=%s",
		result.ReservationID, result.SessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
