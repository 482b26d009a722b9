package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/ptr"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

func reservation(in, out types.Date, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{ID: in.String(), CheckInDate: in, CheckOutDate: out, Status: status}
}

func TestCalendar_ReservationSpanIsHalfOpen(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed} {
		t.Run(string(status), func(t *testing.T) {
			cal := NewCalendar(monday, baseConfig(), []domain.Reservation{reservation(wednesday, friday, status)})

			assert.Equal(t, domain.ReasonAlreadyBooked, cal.UnavailableReason(wednesday), "check-in day is disabled")
			assert.Equal(t, domain.ReasonAlreadyBooked, cal.UnavailableReason(wednesday.AddDays(1)))
			assert.False(t, cal.IsDisabled(friday), "check-out day is free")
		})
	}
}

func TestCalendar_InactiveReservationsDoNotBlock(t *testing.T) {
	cal := NewCalendar(monday, baseConfig(), []domain.Reservation{
		reservation(wednesday, friday, domain.StatusCancelled),
		reservation(tuesday, wednesday, domain.StatusCompleted),
	})

	assert.False(t, cal.IsDisabled(tuesday))
	assert.False(t, cal.IsDisabled(wednesday))
}

func TestCalendar_BackToBackTurnover(t *testing.T) {
	cal := NewCalendar(monday, baseConfig(), []domain.Reservation{
		reservation(wednesday, friday, domain.StatusConfirmed),
	})

	assert.True(t, cal.IsRangeBookable(stay(monday, wednesday)), "leave on the next guest's arrival day")
	assert.True(t, cal.IsRangeBookable(stay(friday, sunday)), "arrive on the previous guest's departure day")
	assert.False(t, cal.IsRangeBookable(stay(tuesday, wednesday.AddDays(1))))
	assert.True(t, cal.OverlapsReservation(stay(tuesday, wednesday.AddDays(1))))
	assert.False(t, cal.OverlapsReservation(stay(monday, wednesday)))
}

func TestCalendar_BlockedRangeInclusive(t *testing.T) {
	cfg := baseConfig()
	cfg.BlockedDates = []domain.BlockedRange{{Start: tuesday, End: wednesday, Note: "maintenance"}}
	cal := NewCalendar(monday, cfg, nil)

	assert.False(t, cal.IsDisabled(monday))
	assert.Equal(t, domain.ReasonBlockedByOwner, cal.UnavailableReason(tuesday))
	assert.Equal(t, domain.ReasonBlockedByOwner, cal.UnavailableReason(wednesday))
	assert.False(t, cal.IsDisabled(wednesday.AddDays(1)))
	assert.Equal(t, domain.ReasonBlockedByOwner, cal.ConflictReason(stay(monday, friday)))
}

func TestCalendar_PastAndAdvanceLimit(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxAdvanceBookingMonths = ptr.Ptr(3)
	today := types.MustParseDate("2025-01-31")
	cal := NewCalendar(today, cfg, nil)

	assert.Equal(t, domain.ReasonPastDate, cal.UnavailableReason(today.AddDays(-1)))
	assert.False(t, cal.IsDisabled(today))
	assert.False(t, cal.IsDisabled(types.MustParseDate("2025-04-30")), "horizon itself is bookable")
	assert.Equal(t, domain.ReasonAdvanceLimit, cal.UnavailableReason(types.MustParseDate("2025-05-01")))
}

func TestCalendar_NoAdvanceLimitWhenUnset(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxAdvanceBookingMonths = ptr.Ptr(0)
	cal := NewCalendar(monday, cfg, nil)

	assert.False(t, cal.IsDisabled(monday.AddMonths(60)))
}

func TestCalendar_ReasonPriority(t *testing.T) {
	cfg := baseConfig()
	cfg.BlockedDates = []domain.BlockedRange{{Start: monday.AddDays(-10), End: nextMon}}
	cal := NewCalendar(monday, cfg, []domain.Reservation{reservation(wednesday, friday, domain.StatusConfirmed)})

	assert.Equal(t, domain.ReasonPastDate, cal.UnavailableReason(monday.AddDays(-1)))
	assert.Equal(t, domain.ReasonAlreadyBooked, cal.UnavailableReason(wednesday))
	assert.Equal(t, domain.ReasonBlockedByOwner, cal.UnavailableReason(tuesday))
}

func TestCalendar_DisabledDatesAndSpans(t *testing.T) {
	cfg := baseConfig()
	cfg.BlockedDates = []domain.BlockedRange{{Start: saturday, End: sunday}}
	cfg.MaxAdvanceBookingMonths = ptr.Ptr(1)
	cal := NewCalendar(tuesday, cfg, []domain.Reservation{
		reservation(wednesday, friday, domain.StatusPending),
		reservation(friday, saturday, domain.StatusCancelled),
	})

	days := cal.DisabledDates(stay(monday, nextMon))
	require.Len(t, days, 5)
	assert.Equal(t, domain.DisabledDay{Date: monday, Reason: domain.ReasonPastDate}, days[0])
	assert.Equal(t, domain.DisabledDay{Date: wednesday, Reason: domain.ReasonAlreadyBooked}, days[1])
	assert.Equal(t, domain.DisabledDay{Date: wednesday.AddDays(1), Reason: domain.ReasonAlreadyBooked}, days[2])
	assert.Equal(t, domain.DisabledDay{Date: saturday, Reason: domain.ReasonBlockedByOwner}, days[3])
	assert.Equal(t, domain.DisabledDay{Date: sunday, Reason: domain.ReasonBlockedByOwner}, days[4])

	spans := cal.DisabledSpans()
	require.Len(t, spans, 4)
	assert.Equal(t, monday, spans[0].To)
	assert.True(t, spans[0].From.IsZero())
	assert.Equal(t, DisabledSpan{From: saturday, To: sunday, Reason: domain.ReasonBlockedByOwner}, spans[1])
	assert.Equal(t, DisabledSpan{From: wednesday, To: wednesday.AddDays(1), Reason: domain.ReasonAlreadyBooked}, spans[2])
	assert.Equal(t, tuesday.AddMonths(1).AddDays(1), spans[3].From)
	assert.Equal(t, domain.ReasonAdvanceLimit, spans[3].Reason)
}

func TestCalendar_DoesNotMutateInputs(t *testing.T) {
	cfg := baseConfig()
	reservations := []domain.Reservation{reservation(wednesday, friday, domain.StatusConfirmed)}
	cal := NewCalendar(monday, cfg, reservations)

	_ = cal.Quote(stay(monday, nextMon), domain.GuestCounts{Adults: 2})
	_ = cal.DisabledSpans()

	assert.Equal(t, wednesday, reservations[0].CheckInDate)
	assert.Equal(t, *baseConfig(), *cfg)
}

func TestCalendar_Quote(t *testing.T) {
	cal := NewCalendar(monday, baseConfig(), []domain.Reservation{reservation(wednesday, friday, domain.StatusConfirmed)})
	guests := domain.GuestCounts{Adults: 2}

	incomplete := cal.Quote(domain.DateRange{From: monday}, guests)
	assert.Equal(t, RejectionIncomplete, incomplete.Rejection)
	assert.False(t, incomplete.HasConflict())
	assert.False(t, incomplete.IsPriced())

	conflict := cal.Quote(stay(tuesday, wednesday.AddDays(1)), guests)
	assert.True(t, conflict.HasConflict())
	assert.Equal(t, domain.ReasonAlreadyBooked, conflict.Conflict)
	assert.Nil(t, conflict.Breakdown)

	tooShort := cal.Quote(stay(friday, saturday), guests)
	assert.Equal(t, RejectionTooShort, tooShort.Rejection)
	assert.False(t, tooShort.HasConflict())

	priced := cal.Quote(stay(monday, wednesday), guests)
	require.True(t, priced.IsPriced())
	assert.Equal(t, 1200.0, priced.Breakdown.Total)
}
