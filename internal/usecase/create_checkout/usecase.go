package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/ptr"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// UseCase use case оформления бронирования: повторная проверка дат,
// временная бронь и платежная сессия
type UseCase struct {
	contentRepo  ContentRepository
	payments     PaymentProvider
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	contentRepo ContentRepository,
	payments PaymentProvider,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		contentRepo:  contentRepo,
		payments:     payments,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case оформления.
// Проверка дат и запись брони pending идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: %s to %s, adults=%d, children=%d, total=%.2f",
		req.CheckIn, req.CheckOut, req.Adults, req.ChildrenUnder12, req.TotalAmount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		uc.metrics.IncCheckout(ResultRejected)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := types.DateOf(now.In(uc.location))
	stay := domain.DateRange{From: req.CheckIn, To: req.CheckOut}
	guests := domain.GuestCounts{Adults: req.Adults, ChildrenUnder12: req.ChildrenUnder12}

	// 2. Повторная проверка на свежем снимке и временная бронь
	var hold domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := uc.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		cfg := &content.Bookings
		if err := pricing.ValidateGuests(guests, cfg.OccupancyPricing); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidGuests, err)
		}

		calendar := pricing.NewCalendar(today, cfg, content.Reservations)
		if reason := calendar.ConflictReason(stay); reason != domain.ReasonNone {
			return fmt.Errorf("%w: %s", ErrDatesNoLongerAvailable, reason)
		}

		if rejection := pricing.CheckStayLength(stay, cfg); rejection != pricing.RejectionNone {
			return fmt.Errorf("%w: %s", ErrStayNotAllowed, rejection)
		}

		breakdown := pricing.PriceStay(stay, cfg, guests)
		if !matchesBreakdown(req, breakdown) {
			uc.logger.Warn("CreateCheckout: client total=%.2f, server total=%.2f", req.TotalAmount, breakdown.Total)
			return ErrPriceMismatch
		}

		hold = uc.newHold(req, breakdown, now)
		content.Reservations = append(content.Reservations, hold)
		return uc.contentRepo.Update(ctx, content)
	})
	if err != nil {
		return nil, uc.mapHoldError(err)
	}

	uc.logger.Info("CreateCheckout: pending reservation id=%s placed", hold.ID)

	// 3. Платежная сессия
	session, err := uc.payments.CreateCheckoutSession(stripepay.StayDetails{
		ReservationID:   hold.ID,
		CheckInDate:     hold.CheckInDate,
		CheckOutDate:    hold.CheckOutDate,
		GuestName:       hold.GuestName,
		GuestEmail:      hold.GuestEmail,
		GuestPhone:      ptr.Deref(hold.GuestPhone, ""),
		Adults:          req.Adults,
		ChildrenUnder12: req.ChildrenUnder12,
		Breakdown:       breakdownOf(&hold, stay.Nights()),
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: payment session failed for reservation id=%s: %v", hold.ID, err)
		uc.releaseHold(ctx, hold.ID)
		uc.metrics.IncCheckout(ResultProviderError)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	// 4. Привязываем сессию к брони. Вебхук найдет бронь и без этого, по reservationId в метаданных
	uc.attachSession(ctx, hold.ID, session.ID)

	uc.metrics.IncCheckout(ResultCreated)
	uc.logger.Info("CreateCheckout: session=%s created for reservation id=%s", session.ID, hold.ID)

	return &Response{
		ReservationID: hold.ID,
		SessionID:     session.ID,
		URL:           session.URL,
	}, nil
}

func (uc *UseCase) newHold(req *Request, b *domain.StayBreakdown, now time.Time) domain.Reservation {
	return domain.Reservation{
		ID:              uc.newID(),
		CheckInDate:     req.CheckIn,
		CheckOutDate:    req.CheckOut,
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestEmail:      strings.TrimSpace(req.GuestEmail),
		GuestPhone:      ptr.Ptr(strings.TrimSpace(req.GuestPhone)),
		TotalAmount:     b.Total,
		WeekdayNights:   b.WeekdayNights,
		WeekendNights:   b.WeekendNights,
		CleaningFee:     b.CleaningFee,
		OccupancyFee:    b.OccupancyFee,
		Adults:          ptr.Ptr(req.Adults),
		ChildrenUnder12: ptr.Ptr(req.ChildrenUnder12),
		Status:          domain.StatusPending,
		CreatedAt:       now.UTC(),
	}
}

func (uc *UseCase) mapHoldError(err error) error {
	switch {
	case errors.Is(err, ErrDatesNoLongerAvailable):
		uc.logger.Warn("CreateCheckout: %v", err)
		uc.metrics.IncConflict(conflictStage)
		uc.metrics.IncCheckout(ResultConflict)
		return err
	case errors.Is(err, ErrPriceMismatch):
		uc.metrics.IncCheckout(ResultPriceMismatch)
		return err
	case errors.Is(err, ErrInvalidGuests), errors.Is(err, ErrStayNotAllowed):
		uc.logger.Warn("CreateCheckout: %v", err)
		uc.metrics.IncCheckout(ResultRejected)
		return err
	}

	uc.logger.Error("CreateCheckout: failed to place hold: %v", err)
	uc.metrics.IncCheckout(ResultError)
	return fmt.Errorf("%w: failed to place hold: %v", ErrInternal, err)
}

// releaseHold снимает временную бронь, если она все еще pending
func (uc *UseCase) releaseHold(ctx context.Context, id string) {
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := uc.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := content.FindReservation(id)
		if idx < 0 || content.Reservations[idx].Status != domain.StatusPending {
			return nil
		}
		content.Reservations = append(content.Reservations[:idx], content.Reservations[idx+1:]...)
		return uc.contentRepo.Update(ctx, content)
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to release hold id=%s: %v", id, err)
		return
	}
	uc.logger.Info("CreateCheckout: hold id=%s released", id)
}

func (uc *UseCase) attachSession(ctx context.Context, id, sessionID string) {
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := uc.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := content.FindReservation(id)
		if idx < 0 {
			return domain.ErrReservationNotFound
		}
		content.Reservations[idx].StripeSessionID = ptr.Ptr(sessionID)
		return uc.contentRepo.Update(ctx, content)
	})
	if err != nil {
		uc.logger.Warn("CreateCheckout: failed to attach session=%s to reservation id=%s: %v", sessionID, id, err)
	}
}

func breakdownOf(r *domain.Reservation, nights int) domain.StayBreakdown {
	return domain.StayBreakdown{
		Nights:        nights,
		WeekdayNights: r.WeekdayNights,
		WeekendNights: r.WeekendNights,
		NightlyTotal:  r.TotalAmount - r.CleaningFee - r.OccupancyFee,
		CleaningFee:   r.CleaningFee,
		OccupancyFee:  r.OccupancyFee,
		Total:         r.TotalAmount,
	}
}
