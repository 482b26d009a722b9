package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/service/reservations"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CancelByGuest(ctx context.Context, id, email string) (*models.RemovalResponse, error) {
	args := m.Called(ctx, id, email)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.RemovalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+id+"/cancel", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("CancelByGuest", mock.Anything, "res-1", "jane@example.com").
		Return(&models.RemovalResponse{Success: true, Refunded: true}, nil)
	svc.On("CancelByGuest", mock.Anything, "res-1", "eve@example.com").Return(nil, reservations.ErrAccessDenied)
	svc.On("CancelByGuest", mock.Anything, "res-2", mock.Anything).Return(nil, reservations.ErrRefundFailed)
	svc.On("CancelByGuest", mock.Anything, "missing", mock.Anything).Return(nil, reservations.ErrReservationNotFound)

	w := post(svc, "res-1", `{"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"refunded":true}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, post(svc, "res-1", `{"email":"eve@example.com"}`).Code)
	assert.Equal(t, http.StatusBadGateway, post(svc, "res-2", `{"email":"jane@example.com"}`).Code)
	assert.Equal(t, http.StatusNotFound, post(svc, "missing", `{"email":"jane@example.com"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(svc, "res-1", `{"email":"not-an-email"}`).Code)
}
