package lookup_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Lookup(ctx context.Context, email string) ([]models.GuestReservation, error) {
	args := m.Called(ctx, email)
	if resp := args.Get(0); resp != nil {
		return resp.([]models.GuestReservation), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc *mockService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Lookup", mock.Anything, "Jane@Example.com").Return([]models.GuestReservation{{
		ID:           "res-1",
		CheckInDate:  types.MustParseDate("2025-06-02"),
		CheckOutDate: types.MustParseDate("2025-06-05"),
		TotalAmount:  1710,
		Status:       "confirmed",
		GuestName:    "Jane",
	}}, nil)

	w := get(svc, "/api/v1/reservations/lookup?email=Jane@Example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookings":[{"id":"res-1"`)
	assert.Contains(t, w.Body.String(), `"check_in_date":"2025-06-02"`)

	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/reservations/lookup").Code)
	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/reservations/lookup?email=nobody").Code)
	svc.AssertNumberOfCalls(t, "Lookup", 1)
}
