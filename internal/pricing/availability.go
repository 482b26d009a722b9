package pricing

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Calendar снимок конфигурации и бронирований на конкретный день.
// Не меняет переданные данные, безопасен для повторных вызовов
type Calendar struct {
	today        types.Date
	config       *domain.BookingConfig
	reservations []domain.Reservation
	horizon      types.Date
	hasHorizon   bool
}

// NewCalendar today - текущий день в часовом поясе объекта размещения
func NewCalendar(today types.Date, cfg *domain.BookingConfig, reservations []domain.Reservation) *Calendar {
	c := &Calendar{
		today:        today,
		config:       cfg,
		reservations: reservations,
	}
	if months, ok := cfg.AdvanceBookingLimit(); ok {
		c.horizon = today.AddMonths(months)
		c.hasHorizon = true
	}
	return c
}

func (c *Calendar) Today() types.Date { return c.today }

func (c *Calendar) Config() *domain.BookingConfig { return c.config }

// UnavailableReason причина недоступности дня или ReasonNone.
// При нескольких причинах: прошлое, лимит бронирования вперед, чужая бронь, блокировка владельцем
func (c *Calendar) UnavailableReason(d types.Date) domain.UnavailableReason {
	if d.Before(c.today) {
		return domain.ReasonPastDate
	}
	if c.hasHorizon && d.After(c.horizon) {
		return domain.ReasonAdvanceLimit
	}
	if c.isReserved(d) {
		return domain.ReasonAlreadyBooked
	}
	if c.isBlocked(d) {
		return domain.ReasonBlockedByOwner
	}
	return domain.ReasonNone
}

// IsDisabled день нельзя выбрать ночью проживания
func (c *Calendar) IsDisabled(d types.Date) bool {
	return c.UnavailableReason(d) != domain.ReasonNone
}

// ConflictReason первая недоступная ночь диапазона [from, to).
// День выезда не проверяется: выезд в день чужого заезда разрешен
func (c *Calendar) ConflictReason(r domain.DateRange) domain.UnavailableReason {
	if !r.IsComplete() {
		return domain.ReasonNone
	}
	for night := r.From; night.Before(r.To); night = night.AddDays(1) {
		if reason := c.UnavailableReason(night); reason != domain.ReasonNone {
			return reason
		}
	}
	return domain.ReasonNone
}

// OverlapsReservation хотя бы одна ночь диапазона занята активной бронью
func (c *Calendar) OverlapsReservation(r domain.DateRange) bool {
	if !r.IsComplete() {
		return false
	}
	for night := r.From; night.Before(r.To); night = night.AddDays(1) {
		if c.isReserved(night) {
			return true
		}
	}
	return false
}

// IsRangeBookable все ночи диапазона доступны
func (c *Calendar) IsRangeBookable(r domain.DateRange) bool {
	return r.Nights() > 0 && c.ConflictReason(r) == domain.ReasonNone
}

// DisabledDates недоступные дни в окне [window.From, window.To)
func (c *Calendar) DisabledDates(window domain.DateRange) []domain.DisabledDay {
	days := make([]domain.DisabledDay, 0)
	window.EachNight(func(d types.Date) {
		if reason := c.UnavailableReason(d); reason != domain.ReasonNone {
			days = append(days, domain.DisabledDay{Date: d, Reason: reason})
		}
	})
	return days
}

// DisabledSpan непрерывный отрезок недоступных дней, обе границы включительно.
// From или To могут быть пустыми для открытых отрезков (все прошлое, все после лимита)
type DisabledSpan struct {
	From   types.Date               `json:"from"`
	To     types.Date               `json:"to"`
	Reason domain.UnavailableReason `json:"reason"`
}

// DisabledSpans правила недоступности в виде отрезков, как их рисует календарь
func (c *Calendar) DisabledSpans() []DisabledSpan {
	spans := []DisabledSpan{{To: c.today.AddDays(-1), Reason: domain.ReasonPastDate}}

	for _, blocked := range c.config.BlockedDates {
		spans = append(spans, DisabledSpan{From: blocked.Start, To: blocked.End, Reason: domain.ReasonBlockedByOwner})
	}

	for i := range c.reservations {
		r := &c.reservations[i]
		if !r.IsActive() || !r.CheckInDate.Before(r.CheckOutDate) {
			continue
		}
		spans = append(spans, DisabledSpan{From: r.CheckInDate, To: r.CheckOutDate.AddDays(-1), Reason: domain.ReasonAlreadyBooked})
	}

	if c.hasHorizon {
		spans = append(spans, DisabledSpan{From: c.horizon.AddDays(1), Reason: domain.ReasonAdvanceLimit})
	}

	return spans
}

func (c *Calendar) isReserved(d types.Date) bool {
	for i := range c.reservations {
		r := &c.reservations[i]
		if r.IsActive() && r.OccupiesNight(d) {
			return true
		}
	}
	return false
}

func (c *Calendar) isBlocked(d types.Date) bool {
	for _, blocked := range c.config.BlockedDates {
		if blocked.Contains(d) {
			return true
		}
	}
	return false
}
