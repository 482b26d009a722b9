package pricing

import "github.com/m04kA/SMC-StayBooking/internal/domain"

// Quote итог оценки выбранного диапазона
type Quote struct {
	Range     domain.DateRange
	Breakdown *domain.StayBreakdown
	Rejection Rejection
	Conflict  domain.UnavailableReason
}

// IsPriced диапазон свободен и оценен
func (q Quote) IsPriced() bool {
	return q.Breakdown != nil && q.Conflict == domain.ReasonNone
}

// HasConflict диапазон выбран, но пересекается с недоступными днями
func (q Quote) HasConflict() bool {
	return q.Conflict != domain.ReasonNone
}

// Quote проверяет доступность и считает цену. Конфликт имеет приоритет над длиной проживания
func (c *Calendar) Quote(r domain.DateRange, guests domain.GuestCounts) Quote {
	q := Quote{Range: r}

	if !r.IsComplete() {
		q.Rejection = RejectionIncomplete
		return q
	}

	if r.Nights() > 0 {
		if reason := c.ConflictReason(r); reason != domain.ReasonNone {
			q.Conflict = reason
			return q
		}
	}

	q.Rejection = CheckStayLength(r, c.config)
	if q.Rejection != RejectionNone {
		return q
	}

	q.Breakdown = PriceStay(r, c.config, guests)
	return q
}
