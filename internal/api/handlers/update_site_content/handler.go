package update_site_content

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

// Handle PUT /api/v1/admin/site-content
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSiteContentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/site-content - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("PUT /admin/site-content - Invalid content: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, content.ErrStorageNotReady):
			h.logger.Error("PUT /admin/site-content - Storage not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageNotReady)
		default:
			h.logger.Error("PUT /admin/site-content - Failed to save content: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/site-content - Content saved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
