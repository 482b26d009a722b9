package update_site_content

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// UpdateSiteContentRequest HTTP request model. Бронирования в теле игнорируются
type UpdateSiteContentRequest struct {
	Hero         domain.HeroContent     `json:"hero"`
	Gallery      []domain.GalleryImage  `json:"gallery"`
	Details      domain.PropertyDetails `json:"details"`
	Bookings     domain.BookingConfig   `json:"bookings"`
	Reservations []domain.Reservation   `json:"reservations,omitempty"`
}

// ToDomain конвертирует HTTP запрос в документ
func (r *UpdateSiteContentRequest) ToDomain() *domain.SiteContent {
	gallery := r.Gallery
	if gallery == nil {
		gallery = []domain.GalleryImage{}
	}

	return &domain.SiteContent{
		Hero:     r.Hero,
		Gallery:  gallery,
		Details:  r.Details,
		Bookings: r.Bookings,
	}
}
