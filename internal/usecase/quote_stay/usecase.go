package quote_stay

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// UseCase use case для серверного расчета стоимости проживания
type UseCase struct {
	contentRepo  ContentRepository
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(contentRepo ContentRepository, metrics Metrics, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		contentRepo:  contentRepo,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет доступность и считает стоимость выбранного диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: %s to %s, adults=%d, children=%d", req.CheckIn, req.CheckOut, req.Adults, req.ChildrenUnder12)

	// 1. Валидация входных данных
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// 2. Получаем актуальную конфигурацию и бронирования
	content, err := uc.contentRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("QuoteStay: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load content: %v", ErrInternal, err)
	}

	guests := domain.GuestCounts{Adults: req.Adults, ChildrenUnder12: req.ChildrenUnder12}
	if err := pricing.ValidateGuests(guests, content.Bookings.OccupancyPricing); err != nil {
		uc.logger.Warn("QuoteStay: invalid guests: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidGuests, err)
	}

	// 3. Считаем
	today := types.DateOf(uc.timeProvider.Now().In(uc.location))
	calendar := pricing.NewCalendar(today, &content.Bookings, content.Reservations)
	stay := domain.DateRange{From: req.CheckIn, To: req.CheckOut}
	quote := calendar.Quote(stay, guests)

	resp := &Response{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Bookable:  quote.IsPriced(),
		Breakdown: quote.Breakdown,
		Rejection: quote.Rejection,
		Conflict:  quote.Conflict,
	}

	switch {
	case quote.HasConflict():
		resp.Message = quote.Conflict.Message()
		uc.metrics.IncQuote(ResultConflict)
	case quote.Rejection != pricing.RejectionNone:
		resp.Message = rejectionMessage(quote.Rejection, &content.Bookings)
		uc.metrics.IncQuote(ResultRejected)
	default:
		resp.Nightly = pricing.NightlyLines(stay, &content.Bookings)
		uc.metrics.IncQuote(ResultPriced)
	}

	uc.logger.Info("QuoteStay: bookable=%t rejection=%s conflict=%s", resp.Bookable, resp.Rejection, resp.Conflict)
	return resp, nil
}

func rejectionMessage(rejection pricing.Rejection, cfg *domain.BookingConfig) string {
	switch rejection {
	case pricing.RejectionIncomplete:
		return "Select both check-in and check-out dates."
	case pricing.RejectionEmpty:
		return "Check-out must be after check-in."
	case pricing.RejectionTooShort:
		return fmt.Sprintf("Minimum stay is %d nights.", cfg.MinimumNights)
	case pricing.RejectionTooLong:
		maxNights, _ := cfg.MaxNights()
		return fmt.Sprintf("Maximum stay is %d nights.", maxNights)
	}
	return ""
}
