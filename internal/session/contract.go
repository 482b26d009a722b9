package session

import "context"

// CheckoutClient создает платежную сессию для выбранного проживания
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}
