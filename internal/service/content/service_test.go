package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	contentRepo "github.com/m04kA/SMC-StayBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StayBooking/pkg/logger"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context) (*domain.SiteContent, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(*domain.SiteContent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetForUpdate(ctx context.Context) (*domain.SiteContent, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(*domain.SiteContent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, content *domain.SiteContent) error {
	return m.Called(ctx, content).Error(0)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func contentWithReservation() *domain.SiteContent {
	c := domain.DefaultSiteContent()
	c.Reservations = []domain.Reservation{{
		ID:           "r1",
		CheckInDate:  types.MustParseDate("2025-07-01"),
		CheckOutDate: types.MustParseDate("2025-07-03"),
		GuestName:    "Sam",
		GuestEmail:   "sam@example.com",
		Status:       domain.StatusConfirmed,
	}}
	return &c
}

func TestGetPublic(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())
	repo.On("Get", mock.Anything).Return(contentWithReservation(), nil)

	public, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public.Reservations, 1)
	assert.Equal(t, "r1", public.Reservations[0].ID)
	assert.Equal(t, domain.DefaultPanelHeading, public.PanelText.Heading)
}

func TestGetPublic_TableMissing(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())
	repo.On("Get", mock.Anything).Return(nil, contentRepo.ErrTableMissing)

	_, err := svc.GetPublic(context.Background())
	assert.ErrorIs(t, err, ErrStorageNotReady)
}

func TestGetFull_FormatsAdminText(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	c := contentWithReservation()
	c.Bookings.BlockedDates = []domain.BlockedRange{{
		Start: types.MustParseDate("2025-08-01"),
		End:   types.MustParseDate("2025-08-03"),
		Note:  "maintenance",
	}}
	repo.On("Get", mock.Anything).Return(c, nil)

	full, err := svc.GetFull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", full.Content.Reservations[0].GuestEmail)
	assert.Contains(t, full.BlockedDatesText, "2025-08-01 to 2025-08-03")
}

func TestReplace_KeepsReservations(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	repo.On("GetForUpdate", mock.Anything).Return(contentWithReservation(), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.SiteContent) bool {
		return c.Hero.Headline == "New headline" && len(c.Reservations) == 1 && c.Reservations[0].ID == "r1"
	})).Return(nil)

	next := domain.DefaultSiteContent()
	next.Hero.Headline = "New headline"
	next.Reservations = nil

	saved, err := svc.Replace(context.Background(), &next)
	require.NoError(t, err)
	assert.Equal(t, "New headline", saved.Content.Hero.Headline)
	assert.Len(t, saved.Content.Reservations, 1)
	repo.AssertExpectations(t)
}

func TestReplace_InvalidConfig(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	next := domain.DefaultSiteContent()
	next.Bookings.MinimumNights = 0

	_, err := svc.Replace(context.Background(), &next)
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything)
}

func TestSetBlockedDates(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	repo.On("GetForUpdate", mock.Anything).Return(contentWithReservation(), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.SiteContent) bool {
		return len(c.Bookings.BlockedDates) == 2
	})).Return(nil)

	blocked, err := svc.SetBlockedDates(context.Background(), "2025-08-01 to 2025-08-03 | maintenance\n2025-09-10")
	require.NoError(t, err)
	require.Len(t, blocked, 2)
	assert.Equal(t, "maintenance", blocked[0].Note)
	assert.True(t, blocked[1].Start.Equal(blocked[1].End))
}

func TestSetBlockedDates_ParseError(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	_, err := svc.SetBlockedDates(context.Background(), "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything)
}

func TestSetCustomRates(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	repo.On("GetForUpdate", mock.Anything).Return(contentWithReservation(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	periods, err := svc.SetCustomRates(context.Background(), "2025-12-20 to 2026-01-05 | $750 | Summer holidays")
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, 750.0, periods[0].Rate)
	assert.Equal(t, "Summer holidays", periods[0].Label)
}

func TestSetCustomRates_StorageError(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, inlineTx{}, logger.NewDiscard())

	repo.On("GetForUpdate", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.SetCustomRates(context.Background(), "2025-12-20 to 2026-01-05 | 750 | Summer")
	assert.ErrorIs(t, err, ErrInternal)
}
