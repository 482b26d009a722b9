package get_checkout_session

import (
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
)

type PaymentProvider interface {
	GetCheckoutSession(sessionID string) (*stripepay.SessionStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
