package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/payment"
	"github.com/seoforge/seoforge/internal/service/paymentservice"
	"github.com/seoforge/seoforge/internal/service/pricingservice"
	"github.com/seoforge/seoforge/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestWithOrderID(method, target, id string, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx)
	return r.WithContext(ctx)
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful checkout",
			body: `{"plan_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, 1).
					Return(&paymentservice.CheckoutResult{
						TransactionID:  42,
						PaymentPageURL: "https://pay.example/t/42",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"plan_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unknown pricing plan",
			body: `{"plan_id":9}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, 9).
					Return(nil, pricingservice.ErrPlanNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Pricing plan not found",
		},
		{
			name: "Duplicate order",
			body: `{"plan_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, 1).
					Return(nil, paymentservice.ErrDuplicateOrder)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Order already exists",
		},
		{
			name: "Provider unavailable",
			body: `{"plan_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, 1).
					Return(nil, payment.ErrProviderUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Payment provider unavailable",
		},
		{
			name: "Internal server error",
			body: `{"plan_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), 1, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Checkout(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.CheckoutResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(42), body.TransactionID)
				assert.Equal(t, "https://pay.example/t/42", body.PaymentPageURL)
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns provider state and local status", func(t *testing.T) {
		service.EXPECT().Status(gomock.Any(), int64(42)).Return("COMPLETED", "fulfilled", nil)

		r := requestWithOrderID(http.MethodGet, "/status/42", "42", "")
		w := httptest.NewRecorder()

		handler.Status(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.PaymentStatusResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(42), body.ID)
		assert.Equal(t, "COMPLETED", body.State)
		assert.Equal(t, "fulfilled", body.Local)
	})

	t.Run("Invalid transaction id", func(t *testing.T) {
		r := requestWithOrderID(http.MethodGet, "/status/abc", "abc", "")
		w := httptest.NewRecorder()

		handler.Status(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown order", func(t *testing.T) {
		service.EXPECT().Status(gomock.Any(), int64(9)).
			Return("", "", paymentservice.ErrOrderNotFound)

		r := requestWithOrderID(http.MethodGet, "/status/9", "9", "")
		w := httptest.NewRecorder()

		handler.Status(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		service.EXPECT().Status(gomock.Any(), int64(42)).
			Return("", "", payment.ErrProviderUnavailable)

		r := requestWithOrderID(http.MethodGet, "/status/42", "42", "")
		w := httptest.NewRecorder()

		handler.Status(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestFulfillHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		result       *paymentservice.ReconcileResult
		err          error
		expectedCode int
		expectedBody dto.ReconcileResponseDTO
	}{
		{
			name:         "Settled payment answers 200",
			result:       &paymentservice.ReconcileResult{Outcome: paymentservice.OutcomeFulfilled, State: "COMPLETED"},
			expectedCode: http.StatusOK,
			expectedBody: dto.ReconcileResponseDTO{OK: true, State: "COMPLETED"},
		},
		{
			name: "Repeat call reports the earlier settlement",
			result: &paymentservice.ReconcileResult{
				Outcome:          paymentservice.OutcomeFulfilled,
				State:            "COMPLETED",
				AlreadyFulfilled: true,
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ReconcileResponseDTO{OK: true, State: "COMPLETED", AlreadyFulfilled: true},
		},
		{
			name:         "Failed payment answers 400",
			result:       &paymentservice.ReconcileResult{Outcome: paymentservice.OutcomeFailed, State: "FAILED"},
			expectedCode: http.StatusBadRequest,
			expectedBody: dto.ReconcileResponseDTO{OK: false, State: "FAILED"},
		},
		{
			name:         "Pending payment answers 202",
			result:       &paymentservice.ReconcileResult{Outcome: paymentservice.OutcomePending, State: "PENDING"},
			expectedCode: http.StatusAccepted,
			expectedBody: dto.ReconcileResponseDTO{OK: false, State: "PENDING"},
		},
		{
			name:         "Unknown order",
			err:          paymentservice.ErrOrderNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Provider unavailable",
			err:          payment.ErrProviderUnavailable,
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Reconcile(gomock.Any(), int64(42)).Return(tt.result, tt.err)

			r := requestWithOrderID(http.MethodPost, "/fulfill/42", "42", "")
			w := httptest.NewRecorder()

			handler.Fulfill(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.err == nil {
				var body dto.ReconcileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestWaitHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Settles within the ceiling", func(t *testing.T) {
		service.EXPECT().Wait(gomock.Any(), int64(42)).
			Return(&paymentservice.ReconcileResult{Outcome: paymentservice.OutcomeFulfilled, State: "COMPLETED"}, nil)

		r := requestWithOrderID(http.MethodPost, "/wait/42", "42", "")
		w := httptest.NewRecorder()

		handler.Wait(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Ceiling elapses with the payment still pending", func(t *testing.T) {
		service.EXPECT().Wait(gomock.Any(), int64(42)).
			Return(&paymentservice.ReconcileResult{
				Outcome: paymentservice.OutcomePending,
				State:   "PENDING",
				Timeout: true,
			}, nil)

		r := requestWithOrderID(http.MethodPost, "/wait/42", "42", "")
		w := httptest.NewRecorder()

		handler.Wait(w, r)

		assert.Equal(t, http.StatusAccepted, w.Code)
		var body dto.ReconcileResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.True(t, body.Timeout)
		assert.False(t, body.OK)
	})

	t.Run("Unknown order", func(t *testing.T) {
		service.EXPECT().Wait(gomock.Any(), int64(9)).
			Return(nil, paymentservice.ErrOrderNotFound)

		r := requestWithOrderID(http.MethodPost, "/wait/9", "9", "")
		w := httptest.NewRecorder()

		handler.Wait(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Acks a settled payment",
			body: `{"entityId":42,"listenerEntityTechnicalName":"Transaction"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), int64(42)).
					Return(&paymentservice.ReconcileResult{Outcome: paymentservice.OutcomeFulfilled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Acks even when reconciliation fails",
			body: `{"entityId":42}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), int64(42)).
					Return(nil, payment.ErrProviderUnavailable)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing entity id",
			body:         `{"listenerEntityTechnicalName":"Transaction"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"entityId":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Webhook(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
