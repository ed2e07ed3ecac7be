package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/pkg/clients"
)

var fixedNow = time.Unix(1700000000, 0)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New(&config.Config{
		PaymentAddress: "https://pay.example",
		PaymentSpaceID: 5,
		PaymentUserID:  77,
		PaymentAuthKey: base64.StdEncoding.EncodeToString([]byte("secret")),
	}, httpClient)
	client.now = func() time.Time { return fixedNow }

	return client, httpClient
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func expectedMAC(method, path string) string {
	payload := "1|77|1700000000|" + method + "|" + path
	mac := hmac.New(sha512.New, []byte("secret"))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestClient_ReadState(t *testing.T) {
	client, httpClient := NewMock(t)
	ctx := context.Background()

	t.Run("Reads the provider state", func(t *testing.T) {
		httpClient.EXPECT().Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "https://pay.example/api/transaction/read?spaceId=5&id=42", req.URL.String())
				return jsonResponse(http.StatusOK, `{"id":42,"state":"COMPLETED"}`), nil
			})

		state, err := client.ReadState(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, "COMPLETED", state)
	})

	t.Run("Signs every request with the MAC headers", func(t *testing.T) {
		path := "/api/transaction/read?spaceId=5&id=42"
		httpClient.EXPECT().Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "1", req.Header.Get("x-mac-version"))
				assert.Equal(t, "77", req.Header.Get("x-mac-userid"))
				assert.Equal(t, "1700000000", req.Header.Get("x-mac-timestamp"))
				assert.Equal(t, expectedMAC(http.MethodGet, path), req.Header.Get("x-mac-value"))
				return jsonResponse(http.StatusOK, `{"id":42,"state":"PENDING"}`), nil
			})

		_, err := client.ReadState(ctx, 42)
		assert.NoError(t, err)
	})

	t.Run("Transport failure", func(t *testing.T) {
		httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		state, err := client.ReadState(ctx, 42)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Empty(t, state)
	})

	t.Run("Provider error status", func(t *testing.T) {
		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusUnprocessableEntity, `{}`), nil)

		state, err := client.ReadState(ctx, 42)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Empty(t, state)
	})
}

func TestClient_CreateTransaction(t *testing.T) {
	client, httpClient := NewMock(t)
	ctx := context.Background()

	req := CreateTransactionRequest{
		Amount:     9.99,
		Currency:   "EUR",
		Name:       "Starter",
		SKU:        "plan-1",
		Reference:  "user-1-plan-1",
		SuccessURL: "https://app.example/payments/success",
		FailedURL:  "https://app.example/payments/failed",
	}

	t.Run("Creates the transaction and resolves the payment page", func(t *testing.T) {
		gomock.InOrder(
			httpClient.EXPECT().Do(gomock.Any()).
				DoAndReturn(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, http.MethodPost, r.Method)
					assert.Equal(t, "https://pay.example/api/transaction/create?spaceId=5", r.URL.String())
					body, _ := io.ReadAll(r.Body)
					assert.Contains(t, string(body), `"merchantReference":"user-1-plan-1"`)
					assert.Contains(t, string(body), `"amountIncludingTax":9.99`)
					assert.Contains(t, string(body), `"autoConfirmationEnabled":true`)
					return jsonResponse(http.StatusOK, `{"id":42,"state":"PENDING"}`), nil
				}),
			httpClient.EXPECT().Do(gomock.Any()).
				DoAndReturn(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, "https://pay.example/api/transaction-payment-page/payment-page-url?spaceId=5&id=42", r.URL.String())
					return jsonResponse(http.StatusOK, `"https://pay.example/t/42"`), nil
				}),
		)

		tx, err := client.CreateTransaction(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), tx.ID)
		assert.Equal(t, "PENDING", tx.State)
		assert.Equal(t, "https://pay.example/t/42", tx.PaymentPageURL)
	})

	t.Run("Accepts a bare payment page URL", func(t *testing.T) {
		gomock.InOrder(
			httpClient.EXPECT().Do(gomock.Any()).
				Return(jsonResponse(http.StatusOK, `{"id":42,"state":"PENDING"}`), nil),
			httpClient.EXPECT().Do(gomock.Any()).
				Return(jsonResponse(http.StatusOK, "https://pay.example/t/42\n"), nil),
		)

		tx, err := client.CreateTransaction(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/t/42", tx.PaymentPageURL)
	})

	t.Run("Create failure", func(t *testing.T) {
		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusInternalServerError, `{}`), nil)

		tx, err := client.CreateTransaction(ctx, req)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Nil(t, tx)
	})
}
