package complete_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/ptr"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// UseCase use case обработки событий платежного провайдера
type UseCase struct {
	contentRepo  ContentRepository
	payments     PaymentProvider
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
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
		logger:       logger,
	}
}

// Execute проверяет подпись и применяет событие к бронированиям.
// Повторная доставка того же события ничего не меняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	event, err := uc.payments.ParseWebhook(req.Payload, req.Signature)
	if err != nil {
		if errors.Is(err, stripepay.ErrInvalidSignature) {
			uc.logger.Warn("CompleteCheckout: rejected webhook: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		uc.logger.Error("CompleteCheckout: failed to parse webhook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	uc.metrics.IncWebhookEvent(event.Type)
	uc.logger.Info("CompleteCheckout: event=%s type=%s", event.ID, event.Type)

	resp := &Response{EventID: event.ID, EventType: event.Type, Action: ActionIgnored}

	switch {
	case event.Completed != nil:
		resp.ReservationID = event.Completed.Stay.ReservationID
		resp.Action, err = uc.complete(ctx, event.Completed)
	case event.Expired != nil:
		resp.ReservationID = event.Expired.ReservationID
		resp.Action, err = uc.expire(ctx, event.Expired)
	case event.PaymentFailed != nil:
		uc.logger.Warn("CompleteCheckout: payment failed for payment_intent=%s: %s",
			event.PaymentFailed.PaymentIntentID, event.PaymentFailed.Message)
		resp.Action = ActionLogged
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteCheckout: event=%s action=%s reservation=%s", event.ID, resp.Action, resp.ReservationID)
	return resp, nil
}

// complete подтверждает временную бронь. Если бронь уже снята (сессия истекла раньше оплаты),
// создает подтвержденную бронь заново после проверки пересечений
func (uc *UseCase) complete(ctx context.Context, checkout *stripepay.CompletedCheckout) (Action, error) {
	if !checkout.Paid {
		uc.logger.Warn("CompleteCheckout: session=%s completed without payment", checkout.SessionID)
		return ActionUnpaid, nil
	}

	stay := checkout.Stay
	action := ActionConfirmed

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := uc.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := uc.findReservation(content, stay.ReservationID, checkout.SessionID)
		if idx >= 0 {
			r := &content.Reservations[idx]
			if r.Status == domain.StatusConfirmed && r.IsPaid() {
				action = ActionAlreadyConfirmed
				return nil
			}
			applyPayment(r, checkout)
			action = ActionConfirmed
			return uc.contentRepo.Update(ctx, content)
		}

		today := types.DateOf(uc.timeProvider.Now().In(uc.location))
		calendar := pricing.NewCalendar(today, &content.Bookings, content.Reservations)
		if calendar.OverlapsReservation(domain.DateRange{From: stay.CheckInDate, To: stay.CheckOutDate}) {
			action = ActionRefundedConflict
			return nil
		}

		r := reservationFrom(checkout, uc.timeProvider.Now())
		content.Reservations = append(content.Reservations, r)
		action = ActionCreated
		return uc.contentRepo.Update(ctx, content)
	})
	if err != nil {
		uc.logger.Error("CompleteCheckout: failed to confirm reservation id=%s: %v", stay.ReservationID, err)
		return "", fmt.Errorf("%w: confirm reservation: %v", ErrInternal, err)
	}

	if action == ActionRefundedConflict {
		// оплата прошла, но даты уже заняты: деньги возвращаются
		uc.metrics.IncConflict(conflictStage)
		uc.logger.Error("CompleteCheckout: paid session=%s overlaps an existing reservation, refunding", checkout.SessionID)
		if checkout.PaymentIntentID == "" {
			return "", fmt.Errorf("%w: conflicting session=%s has no payment intent", ErrInternal, checkout.SessionID)
		}
		if _, err := uc.payments.Refund(checkout.PaymentIntentID); err != nil {
			return "", fmt.Errorf("%w: refund conflicting payment: %v", ErrInternal, err)
		}
	}

	return action, nil
}

// expire снимает временную бронь неоплаченной сессии
func (uc *UseCase) expire(ctx context.Context, expired *stripepay.ExpiredCheckout) (Action, error) {
	action := ActionIgnored

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := uc.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := uc.findReservation(content, expired.ReservationID, expired.SessionID)
		if idx < 0 || content.Reservations[idx].Status != domain.StatusPending {
			return nil
		}

		content.Reservations = append(content.Reservations[:idx], content.Reservations[idx+1:]...)
		action = ActionReleased
		return uc.contentRepo.Update(ctx, content)
	})
	if err != nil {
		uc.logger.Error("CompleteCheckout: failed to release reservation id=%s: %v", expired.ReservationID, err)
		return "", fmt.Errorf("%w: release reservation: %v", ErrInternal, err)
	}

	if action == ActionReleased {
		uc.metrics.IncReservationRemoved(removedExpired)
	}
	return action, nil
}

// findReservation ищет бронь по id, затем по id платежной сессии
func (uc *UseCase) findReservation(content *domain.SiteContent, id, sessionID string) int {
	if id != "" {
		if idx := content.FindReservation(id); idx >= 0 {
			return idx
		}
	}
	if sessionID == "" {
		return -1
	}
	for i := range content.Reservations {
		if ptr.Deref(content.Reservations[i].StripeSessionID, "") == sessionID {
			return i
		}
	}
	return -1
}

func applyPayment(r *domain.Reservation, checkout *stripepay.CompletedCheckout) {
	r.Status = domain.StatusConfirmed
	r.StripeSessionID = ptr.Ptr(checkout.SessionID)
	if checkout.PaymentIntentID != "" {
		r.StripePaymentIntentID = ptr.Ptr(checkout.PaymentIntentID)
	}
	if checkout.CustomerID != "" {
		r.StripeCustomerID = ptr.Ptr(checkout.CustomerID)
	}
	if r.Notes == nil {
		r.Notes = ptr.Ptr(guestNotes(checkout.Stay))
	}
}

func reservationFrom(checkout *stripepay.CompletedCheckout, now time.Time) domain.Reservation {
	stay := checkout.Stay
	b := stay.Breakdown

	r := domain.Reservation{
		ID:              stay.ReservationID,
		CheckInDate:     stay.CheckInDate,
		CheckOutDate:    stay.CheckOutDate,
		GuestName:       stay.GuestName,
		GuestEmail:      stay.GuestEmail,
		TotalAmount:     b.Total,
		WeekdayNights:   b.WeekdayNights,
		WeekendNights:   b.WeekendNights,
		CleaningFee:     b.CleaningFee,
		OccupancyFee:    b.OccupancyFee,
		Adults:          ptr.Ptr(stay.Adults),
		ChildrenUnder12: ptr.Ptr(stay.ChildrenUnder12),
		CreatedAt:       now.UTC(),
	}
	if r.ID == "" {
		r.ID = checkout.SessionID
	}
	if strings.TrimSpace(stay.GuestPhone) != "" {
		r.GuestPhone = ptr.Ptr(stay.GuestPhone)
	}
	applyPayment(&r, checkout)
	return r
}

func guestNotes(stay stripepay.StayDetails) string {
	notes := fmt.Sprintf(notesFormat, stay.Adults, stay.ChildrenUnder12)
	if stay.Breakdown.OccupancyFee > 0 {
		notes += fmt.Sprintf(notesOccupancyPart, stay.Breakdown.OccupancyFee)
	}
	return notes
}
