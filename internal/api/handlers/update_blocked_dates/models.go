package update_blocked_dates

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// UpdateBlockedDatesRequest HTTP request model.
// Одна строка на диапазон: "YYYY-MM-DD to YYYY-MM-DD | заметка"
type UpdateBlockedDatesRequest struct {
	Text string `json:"text"`
}

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	BlockedDates []domain.BlockedRange `json:"blockedDates"`
}

func FromServiceResponse(blocked []domain.BlockedRange) *BlockedDatesResponse {
	if blocked == nil {
		blocked = []domain.BlockedRange{}
	}
	return &BlockedDatesResponse{BlockedDates: blocked}
}
