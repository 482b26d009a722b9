package update_reservation_status

import (
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: r.Status,
		Notes:  r.Notes,
	}
}
