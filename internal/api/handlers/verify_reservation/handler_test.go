package verify_reservation

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

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations"
	"github.com/m04kA/SMC-StayBooking/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Verify(ctx context.Context, id, email string) (*models.VerifyResponse, error) {
	args := m.Called(ctx, id, email)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.VerifyResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/verify", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+id+"/verify", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Verify", mock.Anything, "res-1", "jane@example.com").
		Return(&models.VerifyResponse{Verified: true, Reservation: &domain.Reservation{ID: "res-1"}}, nil)
	svc.On("Verify", mock.Anything, "res-1", "other@example.com").
		Return(&models.VerifyResponse{Verified: false}, nil)
	svc.On("Verify", mock.Anything, "missing", mock.Anything).Return(nil, reservations.ErrReservationNotFound)

	w := post(svc, "res-1", `{"email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
	assert.Contains(t, w.Body.String(), `"booking":{"id":"res-1"`)

	w = post(svc, "res-1", `{"email":"other@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"verified":false}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, post(svc, "missing", `{"email":"jane@example.com"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(svc, "res-1", `{}`).Code)
}
