package update_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/service/content"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgStorageNotReady    = "site content storage is not initialised, run the migrations"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlockedDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blocked, err := h.service.SetBlockedDates(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("PUT /admin/blocked-dates - Invalid text: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, content.ErrStorageNotReady):
			h.logger.Error("PUT /admin/blocked-dates - Storage not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageNotReady)
		default:
			h.logger.Error("PUT /admin/blocked-dates - Failed to save blocked dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/blocked-dates - %d ranges saved", len(blocked))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(blocked))
}
