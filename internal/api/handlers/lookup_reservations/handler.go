package lookup_reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations"
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

// Handle GET /api/v1/reservations/lookup?email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := LookupQuery{Email: strings.TrimSpace(r.URL.Query().Get("email"))}
	if err := handlers.ValidateStruct(query); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	bookings, err := h.service.Lookup(r.Context(), query.Email)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /reservations/lookup - Failed to look up reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &LookupResponse{Bookings: bookings})
}
