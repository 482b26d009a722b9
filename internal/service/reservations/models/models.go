package models

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Причины удаления бронирования для метрик
const (
	RemovedByAdmin = "admin_delete"
	RemovedByGuest = "guest_cancel"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// Response модели

// GuestReservation бронирование в ответе на поиск по email
type GuestReservation struct {
	ID           string     `json:"id"`
	CheckInDate  types.Date `json:"check_in_date"`
	CheckOutDate types.Date `json:"check_out_date"`
	TotalAmount  float64    `json:"total_amount"`
	Status       string     `json:"status"`
	GuestName    string     `json:"guest_name"`
}

// RemovalResponse результат удаления
type RemovalResponse struct {
	Success  bool `json:"success"`
	Refunded bool `json:"refunded"`
}

// VerifyResponse результат проверки email гостя
type VerifyResponse struct {
	Verified    bool                `json:"verified"`
	Reservation *domain.Reservation `json:"booking,omitempty"`
}

// Методы конвертации

// FromDomainGuestReservation конвертирует бронирование для гостя
func FromDomainGuestReservation(r *domain.Reservation) GuestReservation {
	return GuestReservation{
		ID:           r.ID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		TotalAmount:  r.TotalAmount,
		Status:       string(r.Status),
		GuestName:    r.GuestName,
	}
}
