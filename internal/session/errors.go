package session

import "errors"

var (
	ErrInvalidTransition      = errors.New("session: action not allowed in current state")
	ErrSubmissionInFlight     = errors.New("session: checkout submission already in progress")
	ErrMissingGuestDetails    = errors.New("session: name, email and phone are required")
	ErrDatesNoLongerAvailable = errors.New("session: selected dates are no longer available")
	ErrCheckoutFailed         = errors.New("session: checkout session creation failed")
)
