package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBooking/internal/admintext"
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	contentRepo "github.com/m04kA/SMC-StayBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StayBooking/internal/service/content/models"
)

// Service сервис для работы с контентом сайта
type Service struct {
	contentRepo ContentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(contentRepo ContentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		contentRepo: contentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetPublic возвращает контент для посетителей: без данных гостей
func (s *Service) GetPublic(ctx context.Context) (*domain.PublicSiteContent, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetPublic: repository error: %v", err)
		return nil, s.mapRepoError("GetPublic", err)
	}

	public := content.Public()
	return &public, nil
}

// GetFull возвращает документ целиком для админки
func (s *Service) GetFull(ctx context.Context) (*models.AdminContent, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetFull: repository error: %v", err)
		return nil, s.mapRepoError("GetFull", err)
	}

	return models.FromDomainContent(content), nil
}

// Replace заменяет документ. Бронирования не редактируются через контент и сохраняются как есть
func (s *Service) Replace(ctx context.Context, next *domain.SiteContent) (*models.AdminContent, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if err := next.Bookings.Validate(); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved *domain.SiteContent
	err := s.update(ctx, "Replace", func(current *domain.SiteContent) error {
		reservations := current.Reservations
		*current = *next
		current.Reservations = reservations
		saved = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replace: site content saved, %d reservations kept", len(saved.Reservations))
	return models.FromDomainContent(saved), nil
}

// SetBlockedDates заменяет закрытые владельцем даты разобранным текстом
func (s *Service) SetBlockedDates(ctx context.Context, text string) ([]domain.BlockedRange, error) {
	blocked, err := admintext.ParseBlockedDates(text)
	if err != nil {
		s.logger.Warn("SetBlockedDates: parse failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.update(ctx, "SetBlockedDates", func(current *domain.SiteContent) error {
		current.Bookings.BlockedDates = blocked
		return current.Bookings.Validate()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetBlockedDates: %d blocked ranges saved", len(blocked))
	return blocked, nil
}

// SetCustomRates заменяет сезонные цены разобранным текстом
func (s *Service) SetCustomRates(ctx context.Context, text string) ([]domain.CustomRatePeriod, error) {
	periods, err := admintext.ParseCustomRates(text)
	if err != nil {
		s.logger.Warn("SetCustomRates: parse failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.update(ctx, "SetCustomRates", func(current *domain.SiteContent) error {
		current.Bookings.CustomRates = periods
		return current.Bookings.Validate()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetCustomRates: %d custom rate periods saved", len(periods))
	return periods, nil
}

// update read-modify-write документа в сериализуемой транзакции
func (s *Service) update(ctx context.Context, op string, mutate func(current *domain.SiteContent) error) error {
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.contentRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if err := mutate(current); err != nil {
			return err
		}
		return s.contentRepo.Update(ctx, current)
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidBookingConfig) {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return s.mapRepoError(op, err)
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, contentRepo.ErrTableMissing) {
		return fmt.Errorf("%w: %s: %v", ErrStorageNotReady, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
