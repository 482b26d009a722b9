package update_custom_rates

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

// Handle PUT /api/v1/admin/custom-rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomRatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/custom-rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	periods, err := h.service.SetCustomRates(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("PUT /admin/custom-rates - Invalid text: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, content.ErrStorageNotReady):
			h.logger.Error("PUT /admin/custom-rates - Storage not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageNotReady)
		default:
			h.logger.Error("PUT /admin/custom-rates - Failed to save custom rates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/custom-rates - %d periods saved", len(periods))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(periods))
}
