package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// UseCase use case для получения недоступных дней календаря
type UseCase struct {
	contentRepo   ContentRepository
	maxWindowDays int
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(contentRepo ContentRepository, maxWindowDays int, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		contentRepo:   contentRepo,
		maxWindowDays: maxWindowDays,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает недоступные дни в окне [From, To) и правила недоступности отрезками
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := types.DateOf(uc.timeProvider.Now().In(uc.location))

	// 1. Границы окна
	from := req.From
	if from.IsZero() {
		from = today
	}
	to := req.To
	if to.IsZero() {
		to = from.AddDays(DefaultWindowDays)
	}

	uc.logger.Info("GetAvailability: window %s to %s", from, to)

	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}
	if uc.maxWindowDays > 0 && from.DaysUntil(to) > uc.maxWindowDays {
		uc.logger.Warn("GetAvailability: window of %d days exceeds %d", from.DaysUntil(to), uc.maxWindowDays)
		return nil, fmt.Errorf("%w: at most %d days", ErrWindowTooLarge, uc.maxWindowDays)
	}

	// 2. Снимок конфигурации и бронирований
	content, err := uc.contentRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load content: %v", ErrInternal, err)
	}

	calendar := pricing.NewCalendar(today, &content.Bookings, content.Reservations)
	window := domain.DateRange{From: from, To: to}

	resp := &Response{
		Today:         today,
		From:          from,
		To:            to,
		MinimumNights: content.Bookings.MinimumNights,
		MaximumNights: content.Bookings.MaximumNights,
		DisabledDates: calendar.DisabledDates(window),
		Spans:         calendar.DisabledSpans(),
	}

	uc.logger.Info("GetAvailability: %d disabled days in window", len(resp.DisabledDates))
	return resp, nil
}
