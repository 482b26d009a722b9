package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations"
)

const (
	msgInvalidRefundFlag = "refund must be true or false"
	msgNotFound          = "reservation not found"
	msgRefundFailed      = "refund failed, reservation was not deleted"
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

// Handle DELETE /api/v1/admin/reservations/{reservationId}?refund=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	refund := false
	if raw := r.URL.Query().Get("refund"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRefundFlag)
			return
		}
		refund = parsed
	}

	result, err := h.service.Delete(r.Context(), id, refund)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrRefundFailed):
			h.logger.Error("DELETE /admin/reservations/{id} - Refund failed: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundFailed)
		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Deleted: id=%s, refunded=%t", id, result.Refunded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
