package models

import (
	"github.com/m04kA/SMC-StayBooking/internal/admintext"
	"github.com/m04kA/SMC-StayBooking/internal/domain"
)

// AdminContent документ целиком и текущие правила в текстовом виде для формы админки
type AdminContent struct {
	Content          *domain.SiteContent `json:"content"`
	BlockedDatesText string              `json:"blockedDatesText"`
	CustomRatesText  string              `json:"customRatesText"`
}

// FromDomainContent конвертирует документ в ответ для админки
func FromDomainContent(c *domain.SiteContent) *AdminContent {
	if c == nil {
		return nil
	}

	return &AdminContent{
		Content:          c,
		BlockedDatesText: admintext.FormatBlockedDates(c.Bookings.BlockedDates),
		CustomRatesText:  admintext.FormatCustomRates(c.Bookings.CustomRates),
	}
}
