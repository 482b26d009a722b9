package get_checkout_session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) GetCheckoutSession(sessionID string) (*stripepay.SessionStatus, error) {
	args := m.Called(sessionID)
	if resp := args.Get(0); resp != nil {
		return resp.(*stripepay.SessionStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(payments *mockPayments, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(payments, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_PaidSession(t *testing.T) {
	payments := &mockPayments{}
	payments.On("GetCheckoutSession", "cs_test_1").Return(&stripepay.SessionStatus{
		ID:            "cs_test_1",
		Status:        "complete",
		PaymentStatus: "paid",
		AmountTotal:   1260,
		Currency:      "aud",
		ReservationID: "res-1",
		Stay: &stripepay.StayDetails{
			ReservationID: "res-1",
			CheckInDate:   types.MustParseDate("2025-06-02"),
			CheckOutDate:  types.MustParseDate("2025-06-04"),
			GuestName:     "Alex Guest",
			GuestEmail:    "alex@example.com",
			GuestPhone:    "0400000000",
			Adults:        2,
			Breakdown:     domain.StayBreakdown{Nights: 2, Total: 1260},
		},
	}, nil)

	w := get(payments, "/api/v1/checkout/session?session_id=cs_test_1")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"paymentStatus":"paid"`)
	assert.Contains(t, body, `"amountTotal":1260`)
	assert.Contains(t, body, `"reservationId":"res-1"`)
	assert.Contains(t, body, `"checkInDate":"2025-06-02"`)
	assert.Contains(t, body, `"nights":2`)
	assert.NotContains(t, body, "alex@example.com")
	assert.NotContains(t, body, "0400000000")
}

func TestHandle_Errors(t *testing.T) {
	payments := &mockPayments{}
	payments.On("GetCheckoutSession", "cs_missing").Return(nil, stripepay.ErrSessionNotFound)
	payments.On("GetCheckoutSession", "cs_broken").Return(nil, errors.New("stripe down"))

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"missing id", "/api/v1/checkout/session", http.StatusBadRequest},
		{"not a checkout session id", "/api/v1/checkout/session?session_id=pi_123", http.StatusBadRequest},
		{"unknown session", "/api/v1/checkout/session?session_id=cs_missing", http.StatusNotFound},
		{"provider error", "/api/v1/checkout/session?session_id=cs_broken", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, get(payments, tt.target).Code)
		})
	}
	payments.AssertNumberOfCalls(t, "GetCheckoutSession", 2)
}
