package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "reservation not found"
	msgForbidden          = "email does not match this reservation"
	msgRefundFailed       = "refund failed, reservation was not cancelled"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.CancelByGuest(r.Context(), id, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/cancel - Email mismatch: id=%s", id)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reservations.ErrRefundFailed):
			h.logger.Error("POST /reservations/{id}/cancel - Refund failed: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundFailed)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed to cancel: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/cancel - Cancelled by guest: id=%s, refunded=%t", id, result.Refunded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
