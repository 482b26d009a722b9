package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

type MockCheckoutClient struct {
	mock.Mock
}

func (m *MockCheckoutClient) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutResult), args.Error(1)
}

// 2025-06-02 - понедельник
var (
	today     = types.MustParseDate("2025-06-02")
	tuesday   = today.AddDays(1)
	wednesday = today.AddDays(2)
	friday    = today.AddDays(4)
	sunday    = today.AddDays(6)
)

func testConfig() *domain.BookingConfig {
	return &domain.BookingConfig{
		WeekdayRate:   500,
		WeekendRate:   600,
		CleaningFee:   200,
		MinimumNights: 2,
		OccupancyPricing: domain.OccupancyPolicy{
			Enabled:       true,
			BaseOccupancy: 2,
			MaxOccupancy:  6,
			PerAdultRate:  50,
		},
	}
}

func confirmed(in, out types.Date) domain.Reservation {
	return domain.Reservation{ID: "r-" + in.String(), CheckInDate: in, CheckOutDate: out, Status: domain.StatusConfirmed}
}

func newController(client CheckoutClient, reservations ...domain.Reservation) *Controller {
	return NewController(pricing.NewCalendar(today, testConfig(), reservations), client)
}

func validGuest() GuestDetails {
	return GuestDetails{Name: "Jane Doe", Email: "jane@example.com", Phone: "+61 400 000 000", Adults: 2}
}

func priceAndContinue(t *testing.T, c *Controller) {
	t.Helper()
	state, err := c.SelectDates(domain.DateRange{From: today, To: wednesday})
	require.NoError(t, err)
	require.Equal(t, StatePriced, state)
	require.NoError(t, c.Continue())
}

func TestController_ClickingBookedDayKeepsSelection(t *testing.T) {
	c := newController(nil, confirmed(wednesday, friday))

	reason, err := c.ClickDay(wednesday)

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonAlreadyBooked, reason)
	view := c.View()
	assert.Equal(t, StateSelectingDates, view.State)
	assert.Equal(t, domain.ReasonAlreadyBooked, view.Notice)
	assert.Equal(t, domain.MsgAlreadyBooked, view.Notice.Message())
	assert.True(t, view.Selection.From.IsZero())

	c.DismissNotice()
	assert.Equal(t, domain.ReasonNone, c.View().Notice)
}

func TestController_ClickReasons(t *testing.T) {
	cfg := testConfig()
	cfg.BlockedDates = []domain.BlockedRange{{Start: sunday, End: sunday}}
	c := NewController(pricing.NewCalendar(today, cfg, nil), nil)

	reason, _ := c.ClickDay(today.AddDays(-1))
	assert.Equal(t, domain.ReasonPastDate, reason)

	reason, _ = c.ClickDay(sunday)
	assert.Equal(t, domain.ReasonBlockedByOwner, reason)
	assert.Equal(t, StateSelectingDates, c.State())
}

func TestController_ClickRangeIsPriced(t *testing.T) {
	c := newController(nil)

	_, err := c.ClickDay(today)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDates, c.State())

	_, err = c.ClickDay(wednesday)
	require.NoError(t, err)

	view := c.View()
	require.Equal(t, StatePriced, view.State)
	assert.Equal(t, 1200.0, view.Quote.Breakdown.Total)
}

func TestController_CheckoutOnNextGuestsArrivalDay(t *testing.T) {
	c := newController(nil, confirmed(wednesday, friday))

	_, _ = c.ClickDay(today)
	reason, err := c.ClickDay(wednesday)

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonNone, reason)
	assert.Equal(t, StatePriced, c.State())
}

func TestController_DateChangesRecompute(t *testing.T) {
	c := newController(nil, confirmed(wednesday, friday))

	state, err := c.SelectDates(domain.DateRange{From: tuesday, To: friday})
	require.NoError(t, err)
	assert.Equal(t, StateConflictDetected, state)
	assert.Nil(t, c.View().Quote.Breakdown)

	state, _ = c.SelectDates(domain.DateRange{From: friday, To: friday.AddDays(1)})
	assert.Equal(t, StateRejected, state, "one night is below the minimum")

	state, _ = c.SelectDates(domain.DateRange{From: friday, To: sunday})
	assert.Equal(t, StatePriced, state)

	state, _ = c.SelectDates(domain.DateRange{From: friday})
	assert.Equal(t, StateSelectingDates, state)
}

func TestController_ContinueAndBack(t *testing.T) {
	c := newController(nil)

	assert.ErrorIs(t, c.Continue(), ErrInvalidTransition)

	priceAndContinue(t, c)
	assert.Equal(t, StateEnteringGuestDetails, c.State())
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	require.NoError(t, c.Back())
	view := c.View()
	assert.Equal(t, StatePriced, view.State)
	assert.Equal(t, domain.DateRange{From: today, To: wednesday}, view.Selection)
	assert.Equal(t, "Jane Doe", view.Guest.Name)

	assert.ErrorIs(t, c.Back(), ErrInvalidTransition)
}

func TestController_SubmitGating(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)

	guest := validGuest()
	guest.Phone = "  "
	require.NoError(t, c.UpdateGuestDetails(guest))
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingGuestDetails)
	assert.Equal(t, StateEnteringGuestDetails, c.State())

	guest = validGuest()
	guest.Adults = 5
	guest.ChildrenUnder12 = 2
	require.NoError(t, c.UpdateGuestDetails(guest))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, pricing.ErrOccupancyExceeded)

	guest.ChildrenUnder12 = 0
	guest.Adults = 0
	require.NoError(t, c.UpdateGuestDetails(guest))
	assert.ErrorIs(t, c.Validate(), pricing.ErrTooFewAdults)

	client.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestController_SubmitSuccess(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)

	guest := validGuest()
	guest.Adults = 3
	guest.ChildrenUnder12 = 1
	require.NoError(t, c.UpdateGuestDetails(guest))

	expected := CheckoutRequest{
		CheckInDate:     "2025-06-02",
		CheckOutDate:    "2025-06-04",
		GuestName:       "Jane Doe",
		GuestEmail:      "jane@example.com",
		GuestPhone:      "+61 400 000 000",
		Adults:          3,
		ChildrenUnder12: 1,
		TotalAmount:     1300,
		WeekdayNights:   2,
		WeekendNights:   0,
		CleaningFee:     200,
		OccupancyFee:    100,
	}
	client.On("CreateCheckoutSession", mock.Anything, expected).
		Return(&CheckoutResult{SessionID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil).Once()

	url, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/cs_test_1", url)
	assert.Equal(t, StateRedirectedToPayment, c.State())
	client.AssertExpectations(t)
}

func TestController_SubmitFailurePreservesDetails(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	client.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: stripe unavailable", ErrCheckoutFailed)).Once()

	_, err := c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrCheckoutFailed)
	view := c.View()
	assert.Equal(t, StateEnteringGuestDetails, view.State)
	assert.True(t, view.CheckoutFailed())
	assert.Equal(t, validGuest(), view.Guest)
	assert.Equal(t, domain.DateRange{From: today, To: wednesday}, view.Selection)
	assert.ErrorIs(t, view.Error, ErrCheckoutFailed)

	client.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(&CheckoutResult{URL: "https://checkout.example/retry"}, nil).Once()

	url, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/retry", url)
	assert.False(t, c.View().CheckoutFailed())
	client.AssertExpectations(t)
}

func TestController_BackAfterFailedSubmit(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	client.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: price has changed", ErrCheckoutFailed)).Once()

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateEnteringGuestDetails, c.State())

	require.NoError(t, c.Back())
	view := c.View()
	assert.Equal(t, StatePriced, view.State)
	assert.NoError(t, view.Error)
	assert.Equal(t, domain.DateRange{From: today, To: wednesday}, view.Selection)
}

func TestController_SubmitWithoutResult(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	client.On("CreateCheckoutSession", mock.Anything, mock.Anything).Return(nil, nil).Once()

	url, err := c.Submit(context.Background())

	assert.Empty(t, url)
	assert.ErrorIs(t, err, ErrCheckoutFailed)
	view := c.View()
	assert.True(t, view.CheckoutFailed())
	assert.Empty(t, view.RedirectURL)
}

func TestController_AuthoritativeConflict(t *testing.T) {
	client := &MockCheckoutClient{}
	c := newController(client)
	priceAndContinue(t, c)
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	client.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, ErrDatesNoLongerAvailable).Once()

	_, err := c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrDatesNoLongerAvailable)
	assert.Equal(t, StateConflictDetected, c.State())

	// Свежий снимок с чужой бронью на те же даты
	require.NoError(t, c.Refresh(pricing.NewCalendar(today, testConfig(), []domain.Reservation{confirmed(today, tuesday)})))
	assert.Equal(t, StateConflictDetected, c.State())

	state, err := c.SelectDates(domain.DateRange{From: tuesday, To: friday})
	require.NoError(t, err)
	assert.Equal(t, StatePriced, state)
}

type blockingClient struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingClient) CreateCheckoutSession(ctx context.Context, _ CheckoutRequest) (*CheckoutResult, error) {
	close(b.started)
	<-b.release
	return &CheckoutResult{URL: "https://checkout.example/once"}, nil
}

func TestController_SingleInFlightSubmission(t *testing.T) {
	client := &blockingClient{started: make(chan struct{}), release: make(chan struct{})}
	c := newController(client)
	priceAndContinue(t, c)
	require.NoError(t, c.UpdateGuestDetails(validGuest()))

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	<-client.started
	assert.Equal(t, StateSubmittingCheckout, c.State())

	_, err := c.Submit(context.Background())
	assert.True(t, errors.Is(err, ErrSubmissionInFlight))
	_, err = c.SelectDates(domain.DateRange{From: friday, To: sunday})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(client.release)
	require.NoError(t, <-done)
	assert.Equal(t, StateRedirectedToPayment, c.State())
}
