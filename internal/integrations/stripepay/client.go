package stripepay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// CheckoutSessionTTL сколько живет неоплаченная сессия.
// Stripe отсчитывает минимум в 30 минут от своего времени получения запроса, а не от нашего now()
const CheckoutSessionTTL = 31 * time.Minute

// Config параметры клиента
type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	PropertyName  string
	SuccessURL    string // абсолютный URL, может содержать {CHECKOUT_SESSION_ID}
	CancelURL     string
}

// Client платежный провайдер: платежные сессии, возвраты, вебхуки
type Client struct {
	sessions sessionsAPI
	refunds  refundsAPI
	cfg      Config
	now      func() time.Time
	log      Logger
}

// NewClient создает клиента Stripe
func NewClient(cfg Config, log Logger) *Client {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return newClient(sc.CheckoutSessions, sc.Refunds, cfg, log)
}

func newClient(sessions sessionsAPI, refunds refundsAPI, cfg Config, log Logger) *Client {
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyAUD)
	}
	return &Client{
		sessions: sessions,
		refunds:  refunds,
		cfg:      cfg,
		now:      time.Now,
		log:      log,
	}
}

// CreateCheckoutSession создает платежную сессию. Суммы переводятся в центы здесь
func (c *Client) CreateCheckoutSession(stay StayDetails) (*CheckoutSession, error) {
	b := stay.Breakdown
	accommodation := b.Total - b.CleaningFee - b.OccupancyFee

	lineItems := []*stripe.CheckoutSessionLineItemParams{
		c.lineItem(
			fmt.Sprintf("%s - Accommodation", c.cfg.PropertyName),
			fmt.Sprintf("%s to %s (%d nights)", stay.CheckInDate, stay.CheckOutDate, b.Nights),
			accommodation,
		),
	}
	if b.CleaningFee > 0 {
		lineItems = append(lineItems, c.lineItem("Cleaning & Preparation Fee", "", b.CleaningFee))
	}
	if b.OccupancyFee > 0 {
		lineItems = append(lineItems, c.lineItem(
			"Additional Guest Fee",
			fmt.Sprintf("%d adults, %d nights", stay.Adults, b.Nights),
			b.OccupancyFee,
		))
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:                lineItems,
		CustomerEmail:            stripe.String(stay.GuestEmail),
		CustomerCreation:         stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways)),
		ClientReferenceID:        stripe.String(stay.ReservationID),
		SuccessURL:               stripe.String(c.cfg.SuccessURL),
		CancelURL:                stripe.String(c.cfg.CancelURL),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		ExpiresAt: stripe.Int64(c.now().Add(CheckoutSessionTTL).Unix()),
	}
	for key, value := range encodeMetadata(stay) {
		params.AddMetadata(key, value)
	}

	session, err := c.sessions.New(params)
	if err != nil {
		c.log.Error("CreateCheckoutSession: stripe error for reservation=%s: %v", stay.ReservationID, err)
		return nil, fmt.Errorf("%w: %v", ErrCreateSession, err)
	}

	c.log.Info("CreateCheckoutSession: session=%s created for reservation=%s total=%.2f", session.ID, stay.ReservationID, b.Total)
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetCheckoutSession состояние платежной сессии по id из ссылки возврата
func (c *Client) GetCheckoutSession(sessionID string) (*SessionStatus, error) {
	session, err := c.sessions.Get(sessionID, &stripe.CheckoutSessionParams{})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) &&
			(stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing) {
			return nil, fmt.Errorf("%w: session=%s", ErrSessionNotFound, sessionID)
		}
		c.log.Error("GetCheckoutSession: stripe error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: session=%s: %v", ErrGetSession, sessionID, err)
	}

	status := &SessionStatus{
		ID:            session.ID,
		Status:        string(session.Status),
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   FromMinorUnits(session.AmountTotal),
		Currency:      string(session.Currency),
		ReservationID: session.Metadata[metaReservationID],
	}
	if status.ReservationID == "" {
		status.ReservationID = session.ClientReferenceID
	}

	stay, err := decodeMetadata(session.Metadata)
	if err != nil {
		c.log.Warn("GetCheckoutSession: session=%s has no stay details: %v", sessionID, err)
	} else {
		status.Stay = stay
	}

	return status, nil
}

// ExpireCheckoutSession закрывает неоплаченную сессию
func (c *Client) ExpireCheckoutSession(sessionID string) error {
	if _, err := c.sessions.Expire(sessionID, &stripe.CheckoutSessionExpireParams{}); err != nil {
		return fmt.Errorf("%w: session=%s: %v", ErrExpireSession, sessionID, err)
	}
	return nil
}

// Refund полный возврат платежа по инициативе гостя
func (c *Client) Refund(paymentIntentID string) (string, error) {
	refund, err := c.refunds.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Reason:        stripe.String(refundReasonByCustomer),
	})
	if err != nil {
		c.log.Error("Refund: payment_intent=%s: %v", paymentIntentID, err)
		return "", fmt.Errorf("%w: payment_intent=%s: %v", ErrRefund, paymentIntentID, err)
	}

	c.log.Info("Refund: refund=%s created for payment_intent=%s", refund.ID, paymentIntentID)
	return refund.ID, nil
}

// ParseWebhook проверяет подпись и разбирает событие
func (c *Client) ParseWebhook(payload []byte, signature string) (*Event, error) {
	raw, err := webhook.ConstructEventWithOptions(payload, signature, c.cfg.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	event := &Event{ID: raw.ID, Type: string(raw.Type)}

	switch event.Type {
	case EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(raw.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, event.Type, err)
		}
		stay, err := decodeMetadata(session.Metadata)
		if err != nil {
			return nil, err
		}
		completed := &CompletedCheckout{
			SessionID: session.ID,
			Paid: session.PaymentStatus == stripe.CheckoutSessionPaymentStatus(paymentStatusPaid) ||
				session.PaymentStatus == stripe.CheckoutSessionPaymentStatus(paymentStatusNoneRequired),
			Stay: *stay,
		}
		if session.PaymentIntent != nil {
			completed.PaymentIntentID = session.PaymentIntent.ID
		}
		if session.Customer != nil {
			completed.CustomerID = session.Customer.ID
		}
		if completed.Stay.ReservationID == "" {
			completed.Stay.ReservationID = session.ClientReferenceID
		}
		event.Completed = completed

	case EventCheckoutExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(raw.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, event.Type, err)
		}
		reservationID := session.Metadata[metaReservationID]
		if reservationID == "" {
			reservationID = session.ClientReferenceID
		}
		event.Expired = &ExpiredCheckout{SessionID: session.ID, ReservationID: reservationID}

	case EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(raw.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, event.Type, err)
		}
		failure := &PaymentFailure{PaymentIntentID: intent.ID}
		if intent.LastPaymentError != nil {
			failure.Message = intent.LastPaymentError.Msg
		}
		event.PaymentFailed = failure
	}

	return event, nil
}

func (c *Client) lineItem(name, description string, amount float64) *stripe.CheckoutSessionLineItemParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(name),
	}
	if description != "" {
		product.Description = stripe.String(description)
	}

	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripe.String(c.cfg.Currency),
			ProductData: product,
			UnitAmount:  stripe.Int64(ToMinorUnits(amount)),
		},
		Quantity: stripe.Int64(1),
	}
}

// ToMinorUnits переводит сумму в центы с округлением
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits переводит центы в сумму
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func encodeMetadata(stay StayDetails) map[string]string {
	b := stay.Breakdown
	return map[string]string{
		metaReservationID:   stay.ReservationID,
		metaCheckInDate:     stay.CheckInDate.String(),
		metaCheckOutDate:    stay.CheckOutDate.String(),
		metaGuestName:       stay.GuestName,
		metaGuestEmail:      stay.GuestEmail,
		metaGuestPhone:      stay.GuestPhone,
		metaAdults:          strconv.Itoa(stay.Adults),
		metaChildrenUnder12: strconv.Itoa(stay.ChildrenUnder12),
		metaTotalAmount:     formatAmount(b.Total),
		metaWeekdayNights:   strconv.Itoa(b.WeekdayNights),
		metaWeekendNights:   strconv.Itoa(b.WeekendNights),
		metaCleaningFee:     formatAmount(b.CleaningFee),
		metaOccupancyFee:    formatAmount(b.OccupancyFee),
	}
}

func decodeMetadata(meta map[string]string) (*StayDetails, error) {
	missing := make([]string, 0)
	for _, key := range []string{metaCheckInDate, metaCheckOutDate, metaGuestName, metaGuestEmail, metaTotalAmount} {
		if strings.TrimSpace(meta[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidMetadata, strings.Join(missing, ", "))
	}

	checkIn, err := types.ParseDate(meta[metaCheckInDate])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	checkOut, err := types.ParseDate(meta[metaCheckOutDate])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	var parseErr error
	parseInt := func(key string, fallback int) int {
		value := strings.TrimSpace(meta[key])
		if value == "" {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%w: %s=%q", ErrInvalidMetadata, key, value)
		}
		return n
	}
	parseFloat := func(key string) float64 {
		value := strings.TrimSpace(meta[key])
		if value == "" {
			return 0
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%w: %s=%q", ErrInvalidMetadata, key, value)
		}
		return f
	}

	stay := &StayDetails{
		ReservationID:   meta[metaReservationID],
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestName:       meta[metaGuestName],
		GuestEmail:      meta[metaGuestEmail],
		GuestPhone:      meta[metaGuestPhone],
		Adults:          parseInt(metaAdults, 2),
		ChildrenUnder12: parseInt(metaChildrenUnder12, 0),
	}
	stay.Breakdown.Total = parseFloat(metaTotalAmount)
	stay.Breakdown.WeekdayNights = parseInt(metaWeekdayNights, 0)
	stay.Breakdown.WeekendNights = parseInt(metaWeekendNights, 0)
	stay.Breakdown.CleaningFee = parseFloat(metaCleaningFee)
	stay.Breakdown.OccupancyFee = parseFloat(metaOccupancyFee)
	stay.Breakdown.Nights = stay.Breakdown.WeekdayNights + stay.Breakdown.WeekendNights
	stay.Breakdown.NightlyTotal = stay.Breakdown.Total - stay.Breakdown.CleaningFee - stay.Breakdown.OccupancyFee

	if parseErr != nil {
		return nil, parseErr
	}
	return stay, nil
}
