package stripepay

import (
	"github.com/stripe/stripe-go/v76"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sessionsAPI часть checkout/session.Client, которой пользуется клиент
type sessionsAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Expire(id string, params *stripe.CheckoutSessionExpireParams) (*stripe.CheckoutSession, error)
}

// refundsAPI часть refund.Client, которой пользуется клиент
type refundsAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}
