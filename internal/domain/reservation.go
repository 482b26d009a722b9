package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// IsValid returns true for the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Reservation represents a guest stay stored in the site content document
type Reservation struct {
	ID           string     `json:"id"`
	CheckInDate  types.Date `json:"check_in_date"`
	CheckOutDate types.Date `json:"check_out_date"`
	GuestName    string     `json:"guest_name"`
	GuestEmail   string     `json:"guest_email"`
	GuestPhone   *string    `json:"guest_phone,omitempty"`

	// Denormalized price breakdown at the time of booking
	TotalAmount   float64 `json:"total_amount"`
	WeekdayNights int     `json:"weekday_nights"`
	WeekendNights int     `json:"weekend_nights"`
	CleaningFee   float64 `json:"cleaning_fee"`
	OccupancyFee  float64 `json:"occupancy_fee,omitempty"`

	Adults          *int `json:"adults,omitempty"`
	ChildrenUnder12 *int `json:"children_under_12,omitempty"`

	Status                ReservationStatus `json:"status"`
	StripePaymentIntentID *string           `json:"stripe_payment_intent_id,omitempty"`
	StripeCustomerID      *string           `json:"stripe_customer_id,omitempty"`
	StripeSessionID       *string           `json:"stripe_session_id,omitempty"`
	Notes                 *string           `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsActive returns true if the reservation occupies its nights on the calendar
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Span returns the occupied nights [check-in, check-out)
func (r *Reservation) Span() DateRange {
	return DateRange{From: r.CheckInDate, To: r.CheckOutDate}
}

// OccupiesNight returns true if the night starting on d belongs to this reservation.
// The check-out day itself is free for the next arrival
func (r *Reservation) OccupiesNight(d types.Date) bool {
	return !d.Before(r.CheckInDate) && d.Before(r.CheckOutDate)
}

// IsPaid returns true if a payment has been captured for the reservation
func (r *Reservation) IsPaid() bool {
	return r.StripePaymentIntentID != nil && *r.StripePaymentIntentID != ""
}

// BelongsTo compares guest email case-insensitively
func (r *Reservation) BelongsTo(email string) bool {
	return strings.EqualFold(strings.TrimSpace(r.GuestEmail), strings.TrimSpace(email))
}

// ReservationSpan is the public view of a reservation: dates and status only, no guest data
type ReservationSpan struct {
	ID           string            `json:"id"`
	CheckInDate  types.Date        `json:"check_in_date"`
	CheckOutDate types.Date        `json:"check_out_date"`
	Status       ReservationStatus `json:"status"`
}

// PublicSpan strips guest details
func (r *Reservation) PublicSpan() ReservationSpan {
	return ReservationSpan{
		ID:           r.ID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Status:       r.Status,
	}
}

// AsReservation restores a calendar-only reservation from its public span
func (s ReservationSpan) AsReservation() Reservation {
	return Reservation{
		ID:           s.ID,
		CheckInDate:  s.CheckInDate,
		CheckOutDate: s.CheckOutDate,
		Status:       s.Status,
	}
}
