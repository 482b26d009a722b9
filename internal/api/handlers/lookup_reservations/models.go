package lookup_reservations

import (
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

// LookupQuery параметры запроса
type LookupQuery struct {
	Email string `json:"email" validate:"required,email"`
}

// LookupResponse HTTP response model
type LookupResponse struct {
	Bookings []models.GuestReservation `json:"bookings"`
}
