package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/service/auth"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Login(password string) (*auth.LoginResponse, error) {
	args := m.Called(password)
	if resp := args.Get(0); resp != nil {
		return resp.(*auth.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	expires := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("Login", "correct horse").Return(&auth.LoginResponse{Token: "jwt", ExpiresAt: expires}, nil)
	svc.On("Login", "wrong").Return(nil, auth.ErrInvalidCredentials)

	w := post(svc, `{"password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt","expiresAt":"2025-06-01T18:00:00Z"}`, w.Body.String())

	w = post(svc, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidCredentials)

	assert.Equal(t, http.StatusBadRequest, post(svc, `{"password":""}`).Code)
	svc.AssertNumberOfCalls(t, "Login", 2)
}
