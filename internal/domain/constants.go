package domain

// Default booking panel copy, used when the owner left a field empty
const (
	DefaultPanelEyebrow     = "Availability & Pricing"
	DefaultPanelHeading     = "Plan your stay"
	DefaultPanelDescription = "Select your arrival and departure dates to view the current rate. Weekends attract a premium, while longer mid-week stays are rewarded with our best nightly pricing."
	DefaultPanelDetail1     = "Self check-in from 3:00pm, check-out by 10:00am"
	DefaultPanelDetail2     = "Rates include all linen, cleaning fee, and local taxes"
)

// Default booking configuration values
const (
	DefaultWeekdayRate   = 520.0
	DefaultWeekendRate   = 590.0
	DefaultCleaningFee   = 220.0
	DefaultMinimumNights = 2

	DefaultBaseOccupancy        = 2
	DefaultMaxOccupancy         = 8
	DefaultPerAdultRate         = 50.0
	DefaultOccupancyDescription = "Base rate includes 2 guests. Additional adults (12+) charged per night."
)

// Business validation constants
const (
	MinMinimumNights        = 1
	MaxAdvanceBookingMonths = 36
	MaxNotesLength          = 500
	MinAdults               = 1
)

// Guest lookup window: reservations with check-in up to this many days ago are still shown
const LookupPastDays = 30

// Currency of all amounts
const Currency = "aud"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Unavailable day messages
const (
	MsgPastDate       = "This date is in the past."
	MsgAdvanceLimit   = "This date is beyond how far in advance we take bookings."
	MsgAlreadyBooked  = "These dates are already booked."
	MsgBlockedByOwner = "The owner has blocked these dates."
)

// ActiveStatuses statuses that occupy nights on the calendar
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
