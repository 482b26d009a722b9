package get_site_content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/service/content"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetPublic(ctx context.Context) (*domain.PublicSiteContent, error) {
	args := m.Called(ctx)
	if resp := args.Get(0); resp != nil {
		return resp.(*domain.PublicSiteContent), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_PublicContent(t *testing.T) {
	svc := &mockService{}
	svc.On("GetPublic", mock.Anything).Return(&domain.PublicSiteContent{
		Hero: domain.HeroContent{Headline: "Cliff House"},
		Reservations: []domain.ReservationSpan{{
			CheckInDate:  types.MustParseDate("2025-06-02"),
			CheckOutDate: types.MustParseDate("2025-06-05"),
			Status:       domain.StatusConfirmed,
		}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/site-content", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cliff House")
	assert.Contains(t, w.Body.String(), "2025-06-02")
	assert.NotContains(t, w.Body.String(), "guest_email")
}

func TestHandle_StorageNotReady(t *testing.T) {
	svc := &mockService{}
	svc.On("GetPublic", mock.Anything).Return(nil, content.ErrStorageNotReady)

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/site-content", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), msgStorageNotReady)
}
