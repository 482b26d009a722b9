package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Service сервис управления бронированиями: админка и самообслуживание гостя
type Service struct {
	contentRepo  ContentRepository
	txManager    TransactionManager
	refunder     PaymentRefunder
	metrics      Metrics
	location     *time.Location
	lookupDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	contentRepo ContentRepository,
	txManager TransactionManager,
	refunder PaymentRefunder,
	metrics Metrics,
	location *time.Location,
	lookupPastDays int,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if lookupPastDays <= 0 {
		lookupPastDays = domain.LookupPastDays
	}
	return &Service{
		contentRepo:  contentRepo,
		txManager:    txManager,
		refunder:     refunder,
		metrics:      metrics,
		location:     location,
		lookupDays:   lookupPastDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List все бронирования по дате заезда
func (s *Service) List(ctx context.Context) ([]domain.Reservation, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := append([]domain.Reservation(nil), content.Reservations...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckInDate.Before(result[j].CheckInDate)
	})

	s.logger.Info("List: fetched %d reservations", len(result))
	return result, nil
}

// Delete удаляет бронирование. При refund=true сначала возвращает оплату;
// если возврат не прошел, бронирование остается
func (s *Service) Delete(ctx context.Context, id string, refund bool) (*models.RemovalResponse, error) {
	s.logger.Info("Delete: reservation id=%s refund=%t", id, refund)

	refunded, err := s.remove(ctx, id, refund, "", models.RemovedByAdmin)
	if err != nil {
		return nil, err
	}

	return &models.RemovalResponse{Success: true, Refunded: refunded}, nil
}

// UpdateStatus меняет статус бронирования и, если переданы, заметки
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*domain.Reservation, error) {
	s.logger.Info("UpdateStatus: reservation id=%s status=%s", id, req.Status)

	status := domain.ReservationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var updated domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := s.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := content.FindReservation(id)
		if idx < 0 {
			return domain.ErrReservationNotFound
		}

		content.Reservations[idx].Status = status
		if req.Notes != nil {
			content.Reservations[idx].Notes = req.Notes
		}
		updated = content.Reservations[idx]

		return s.contentRepo.Update(ctx, content)
	})
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%s is now %s", id, status)
	return &updated, nil
}

// Lookup активные бронирования гостя с заездом не раньше чем lookupDays дней назад
func (s *Service) Lookup(ctx context.Context, email string) ([]models.GuestReservation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Lookup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	cutoff := s.today().AddDays(-s.lookupDays)
	result := make([]models.GuestReservation, 0)
	for i := range content.Reservations {
		r := &content.Reservations[i]
		if !r.BelongsTo(email) || !r.IsActive() || r.CheckInDate.Before(cutoff) {
			continue
		}
		result = append(result, models.FromDomainGuestReservation(r))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckInDate.Before(result[j].CheckInDate)
	})

	s.logger.Info("Lookup: found %d reservations", len(result))
	return result, nil
}

// Verify сверяет email гостя с бронированием без учета регистра
func (s *Service) Verify(ctx context.Context, id, email string) (*models.VerifyResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	reservation, err := s.find(ctx, "Verify", id)
	if err != nil {
		return nil, err
	}

	if !reservation.BelongsTo(email) {
		s.logger.Warn("Verify: email mismatch for reservation id=%s", id)
		return &models.VerifyResponse{Verified: false}, nil
	}

	return &models.VerifyResponse{Verified: true, Reservation: reservation}, nil
}

// CancelByGuest отмена гостем: проверка email, возврат оплаты, удаление
func (s *Service) CancelByGuest(ctx context.Context, id, email string) (*models.RemovalResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	s.logger.Info("CancelByGuest: reservation id=%s", id)

	refunded, err := s.remove(ctx, id, true, email, models.RemovedByGuest)
	if err != nil {
		return nil, err
	}

	return &models.RemovalResponse{Success: true, Refunded: refunded}, nil
}

// remove возвращает оплату (если нужно) и удаляет бронирование из документа.
// Непустой email сверяется с гостем
func (s *Service) remove(ctx context.Context, id string, refund bool, email, reason string) (bool, error) {
	reservation, err := s.find(ctx, "remove", id)
	if err != nil {
		return false, err
	}
	if email != "" && !reservation.BelongsTo(email) {
		s.logger.Warn("remove: email mismatch for reservation id=%s", id)
		return false, ErrAccessDenied
	}

	refunded := false
	if refund && reservation.IsPaid() {
		refundID, err := s.refunder.Refund(*reservation.StripePaymentIntentID)
		if err != nil {
			s.logger.Error("remove: refund failed for reservation id=%s: %v", id, err)
			return false, fmt.Errorf("%w: %v", ErrRefundFailed, err)
		}
		s.logger.Info("remove: refund=%s issued for reservation id=%s", refundID, id)
		refunded = true
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		content, err := s.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}

		idx := content.FindReservation(id)
		if idx < 0 {
			return domain.ErrReservationNotFound
		}
		content.Reservations = append(content.Reservations[:idx], content.Reservations[idx+1:]...)

		return s.contentRepo.Update(ctx, content)
	})
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			// удалено параллельным запросом
			s.logger.Warn("remove: reservation id=%s disappeared before delete", id)
			return refunded, nil
		}
		s.logger.Error("remove: repository error for reservation id=%s: %v", id, err)
		return false, fmt.Errorf("%w: remove - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncReservationRemoved(reason)
	s.logger.Info("remove: reservation id=%s deleted (%s)", id, reason)
	return refunded, nil
}

func (s *Service) find(ctx context.Context, op, id string) (*domain.Reservation, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	idx := content.FindReservation(id)
	if idx < 0 {
		s.logger.Warn("%s: reservation id=%s not found", op, id)
		return nil, ErrReservationNotFound
	}
	return &content.Reservations[idx], nil
}

func (s *Service) today() types.Date {
	return types.DateOf(s.timeProvider.Now().In(s.location))
}
