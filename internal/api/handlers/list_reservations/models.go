package list_reservations

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
	Total        int                  `json:"total"`
}

func FromServiceResponse(list []domain.Reservation) *ReservationsResponse {
	if list == nil {
		list = []domain.Reservation{}
	}
	return &ReservationsResponse{Reservations: list, Total: len(list)}
}
