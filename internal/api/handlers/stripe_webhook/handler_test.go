package stripe_webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	completeCheckout "github.com/m04kA/SMC-StayBooking/internal/usecase/complete_checkout"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *completeCheckout.Request) (*completeCheckout.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*completeCheckout.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const payload = `{"id":"evt_1","type":"checkout.session.completed"}`

func post(uc *mockUseCase, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stripe/webhook", strings.NewReader(payload))
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, req)
	return w
}

func TestHandle_PassesRawPayload(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &completeCheckout.Request{
		Payload:   []byte(payload),
		Signature: "t=1,v1=abc",
	}).Return(&completeCheckout.Response{
		EventID:       "evt_1",
		EventType:     "checkout.session.completed",
		Action:        completeCheckout.ActionConfirmed,
		ReservationID: "res-1",
	}, nil)

	w := post(uc, "t=1,v1=abc")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true,"action":"confirmed","reservationId":"res-1"}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	uc := &mockUseCase{}
	assert.Equal(t, http.StatusBadRequest, post(uc, "").Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad signature", completeCheckout.ErrInvalidSignature, http.StatusBadRequest},
		{"bad payload", completeCheckout.ErrInvalidPayload, http.StatusBadRequest},
		{"storage failure is retried", completeCheckout.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			assert.Equal(t, tt.wantStatus, post(uc, "t=1,v1=abc").Code)
		})
	}
}
