package update_site_content

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/service/content"
	"github.com/m04kA/SMC-StayBooking/internal/service/content/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Replace(ctx context.Context, next *domain.SiteContent) (*models.AdminContent, error) {
	args := m.Called(ctx, next)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.AdminContent), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func put(svc *mockService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPut, "/api/v1/admin/site-content", strings.NewReader(body)))
	return w
}

func TestHandle_DropsReservationsFromBody(t *testing.T) {
	svc := &mockService{}
	svc.On("Replace", mock.Anything, mock.MatchedBy(func(c *domain.SiteContent) bool {
		return c.Hero.Headline == "Cliff House" && c.Bookings.MinimumNights == 3 && c.Reservations == nil
	})).Return(&models.AdminContent{Content: &domain.SiteContent{}}, nil)

	w := put(svc, `{"hero":{"headline":"Cliff House"},"bookings":{"minimumNights":3},"reservations":[{"id":"forged"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusBadRequest, put(svc, `{"hero":`).Code)

	svc.On("Replace", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: minimum nights must be at least 1", content.ErrInvalidInput)).Once()
	w := put(svc, `{"bookings":{"minimumNights":0}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minimum nights must be at least 1")

	svc.On("Replace", mock.Anything, mock.Anything).Return(nil, content.ErrStorageNotReady).Once()
	assert.Equal(t, http.StatusServiceUnavailable, put(svc, `{}`).Code)
}
