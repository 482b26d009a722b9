package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Controller сессия бронирования одного гостя: выбор дат, цена, данные гостя, переход к оплате.
// Состояние живет только в памяти и создается заново при каждом открытии страницы
type Controller struct {
	mu sync.Mutex

	calendar *pricing.Calendar
	client   CheckoutClient

	state       State
	selection   domain.DateRange
	quote       pricing.Quote
	guest       GuestDetails
	notice      domain.UnavailableReason
	lastErr     error
	redirectURL string
	submitting  bool
}

// NewController calendar - снимок конфигурации и бронирований на момент открытия страницы
func NewController(calendar *pricing.Calendar, client CheckoutClient) *Controller {
	return &Controller{
		calendar: calendar,
		client:   client,
		state:    StateSelectingDates,
		quote:    pricing.Quote{Rejection: pricing.RejectionIncomplete},
		guest:    GuestDetails{Adults: DefaultAdults},
	}
}

// View возвращает текущее состояние
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		State:       c.state,
		Selection:   c.selection,
		Quote:       c.quote,
		Guest:       c.guest,
		Notice:      c.notice,
		Error:       c.lastErr,
		RedirectURL: c.redirectURL,
	}
}

// State текущее состояние
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectDates задает диапазон целиком и сразу пересчитывает цену и конфликты
func (c *Controller) SelectDates(r domain.DateRange) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return c.state, ErrSubmissionInFlight
	}

	c.selection = r
	c.notice = domain.ReasonNone
	c.lastErr = nil
	c.reevaluate()
	return c.state, nil
}

// ClickDay клик по дню календаря.
// Недоступный день не меняет выбор, а только выставляет причину (Notice).
// День выезда может совпадать с днем чужого заезда, поэтому он не проверяется
func (c *Controller) ClickDay(day types.Date) (domain.UnavailableReason, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return domain.ReasonNone, ErrSubmissionInFlight
	}

	next := c.selection
	switch {
	case !next.From.IsZero() && next.To.IsZero() && day.After(next.From):
		next.To = day
	default:
		if reason := c.calendar.UnavailableReason(day); reason != domain.ReasonNone {
			c.notice = reason
			return reason, nil
		}
		next = domain.DateRange{From: day}
	}

	c.selection = next
	c.notice = domain.ReasonNone
	c.lastErr = nil
	c.reevaluate()
	return domain.ReasonNone, nil
}

// DismissNotice скрывает сообщение о недоступном дне
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = domain.ReasonNone
}

// ClearDates сбрасывает выбор
func (c *Controller) ClearDates() error {
	_, err := c.SelectDates(domain.DateRange{})
	return err
}

// Continue переход от цены к форме гостя
func (c *Controller) Continue() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePriced {
		return fmt.Errorf("%w: continue from %s", ErrInvalidTransition, c.state)
	}
	c.state = StateEnteringGuestDetails
	return nil
}

// Back возврат от формы гостя к цене, выбор дат и данные гостя сохраняются
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEnteringGuestDetails {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, c.state)
	}
	c.lastErr = nil
	c.state = StatePriced
	return nil
}

// UpdateGuestDetails обновляет форму гостя. Число гостей влияет на доплату, поэтому цена пересчитывается
func (c *Controller) UpdateGuestDetails(details GuestDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEnteringGuestDetails {
		return fmt.Errorf("%w: edit guest details in %s", ErrInvalidTransition, c.state)
	}

	c.guest = details
	c.quote = c.calendar.Quote(c.selection, c.guest.Counts())
	c.state = StateEnteringGuestDetails
	return nil
}

// Validate проверяет, можно ли отправить форму
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

// Submit создает платежную сессию. Одновременно выполняется не больше одной отправки.
// При ошибке сессия возвращается к форме гостя с ошибкой в View, данные и даты сохраняются
// и отправку можно повторить
func (c *Controller) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	if c.state != StateEnteringGuestDetails {
		state := c.state
		c.mu.Unlock()
		return "", fmt.Errorf("%w: submit from %s", ErrInvalidTransition, state)
	}
	if err := c.validateLocked(); err != nil {
		c.mu.Unlock()
		return "", err
	}

	req := c.buildRequest()
	c.submitting = true
	c.lastErr = nil
	c.state = StateSubmittingCheckout
	c.mu.Unlock()

	result, err := c.client.CreateCheckoutSession(ctx, req)
	if err == nil && (result == nil || result.URL == "") {
		err = fmt.Errorf("%w: no checkout url returned", ErrCheckoutFailed)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		c.lastErr = err
		if errors.Is(err, ErrDatesNoLongerAvailable) {
			c.state = StateConflictDetected
			c.quote.Conflict = domain.ReasonAlreadyBooked
			return "", err
		}
		c.state = StateEnteringGuestDetails
		return "", err
	}

	c.redirectURL = result.URL
	c.state = StateRedirectedToPayment
	return result.URL, nil
}

// Refresh подменяет снимок календаря (например, после конфликта на сервере) и пересчитывает выбор
func (c *Controller) Refresh(calendar *pricing.Calendar) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return ErrSubmissionInFlight
	}

	c.calendar = calendar
	c.reevaluate()
	return nil
}

// reevaluate пересчитывает цену для текущего выбора и выставляет состояние
func (c *Controller) reevaluate() {
	c.quote = c.calendar.Quote(c.selection, c.guest.Counts())

	switch {
	case c.quote.Rejection == pricing.RejectionIncomplete:
		c.state = StateSelectingDates
	case c.quote.HasConflict():
		c.state = StateConflictDetected
	case c.quote.IsPriced():
		c.state = StatePriced
	default:
		c.state = StateRejected
	}
}

func (c *Controller) validateLocked() error {
	if !c.quote.IsPriced() {
		return fmt.Errorf("%w: no priced stay selected", ErrInvalidTransition)
	}
	if strings.TrimSpace(c.guest.Name) == "" ||
		strings.TrimSpace(c.guest.Email) == "" ||
		strings.TrimSpace(c.guest.Phone) == "" {
		return ErrMissingGuestDetails
	}
	return pricing.ValidateGuests(c.guest.Counts(), c.calendar.Config().OccupancyPricing)
}

func (c *Controller) buildRequest() CheckoutRequest {
	b := c.quote.Breakdown
	return CheckoutRequest{
		CheckInDate:     c.selection.From.String(),
		CheckOutDate:    c.selection.To.String(),
		GuestName:       strings.TrimSpace(c.guest.Name),
		GuestEmail:      strings.TrimSpace(c.guest.Email),
		GuestPhone:      strings.TrimSpace(c.guest.Phone),
		Adults:          c.guest.Adults,
		ChildrenUnder12: c.guest.ChildrenUnder12,
		TotalAmount:     b.Total,
		WeekdayNights:   b.WeekdayNights,
		WeekendNights:   b.WeekendNights,
		CleaningFee:     b.CleaningFee,
		OccupancyFee:    b.OccupancyFee,
	}
}
