package get_site_content

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StayBooking/internal/service/content"
)

const msgStorageNotReady = "site content storage is not initialised, run the migrations"

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

// Handle GET /api/v1/site-content
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPublic(r.Context())
	if err != nil {
		if errors.Is(err, content.ErrStorageNotReady) {
			h.logger.Error("GET /site-content - Storage not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageNotReady)
			return
		}
		h.logger.Error("GET /site-content - Failed to get content: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
