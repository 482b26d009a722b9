package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-StayBooking/internal/usecase/get_availability"
)

const (
	msgInvalidFrom    = "invalid from date, expected YYYY-MM-DD"
	msgInvalidTo      = "invalid to date, expected YYYY-MM-DD"
	msgInvalidWindow  = "from must be before to"
	msgWindowTooLarge = "requested window is too large"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := parseBound(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	to, err := parseBound(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)
		case errors.Is(err, getAvailability.ErrWindowTooLarge):
			handlers.RespondBadRequest(w, msgWindowTooLarge)
		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
