package domain

import "github.com/m04kA/SMC-StayBooking/pkg/types"

// DateRange selected stay. To is the check-out date and is exclusive
type DateRange struct {
	From types.Date `json:"from"`
	To   types.Date `json:"to"`
}

// IsComplete returns true when both ends are selected
func (r DateRange) IsComplete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Nights number of nights in the range, may be zero or negative for malformed ranges
func (r DateRange) Nights() int {
	if !r.IsComplete() {
		return 0
	}
	return r.From.DaysUntil(r.To)
}

// EachNight calls fn for every night in [From, To)
func (r DateRange) EachNight(fn func(night types.Date)) {
	for d := r.From; d.Before(r.To); d = d.AddDays(1) {
		fn(d)
	}
}

// GuestCounts guests of a stay
type GuestCounts struct {
	Adults          int `json:"adults"`
	ChildrenUnder12 int `json:"childrenUnder12"`
}

// Total all guests including children
func (g GuestCounts) Total() int {
	return g.Adults + g.ChildrenUnder12
}

// StayBreakdown priced stay. Derived on demand, never persisted as is
type StayBreakdown struct {
	Nights        int     `json:"nights"`
	WeekdayNights int     `json:"weekdayNights"`
	WeekendNights int     `json:"weekendNights"`
	NightlyTotal  float64 `json:"nightlyTotal"`
	CleaningFee   float64 `json:"cleaningFee"`
	OccupancyFee  float64 `json:"occupancyFee"`
	Total         float64 `json:"total"`
}

// UnavailableReason why a calendar day cannot be selected
type UnavailableReason string

const (
	ReasonNone           UnavailableReason = ""
	ReasonPastDate       UnavailableReason = "past_date"
	ReasonAdvanceLimit   UnavailableReason = "advance_limit"
	ReasonAlreadyBooked  UnavailableReason = "already_booked"
	ReasonBlockedByOwner UnavailableReason = "blocked_by_owner"
)

// Message text shown to the guest
func (r UnavailableReason) Message() string {
	switch r {
	case ReasonPastDate:
		return MsgPastDate
	case ReasonAdvanceLimit:
		return MsgAdvanceLimit
	case ReasonAlreadyBooked:
		return MsgAlreadyBooked
	case ReasonBlockedByOwner:
		return MsgBlockedByOwner
	default:
		return ""
	}
}

// DisabledDay calendar day that cannot be selected as a night of a stay
type DisabledDay struct {
	Date   types.Date        `json:"date"`
	Reason UnavailableReason `json:"reason"`
}
