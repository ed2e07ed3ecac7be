package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/pkg/clients"
)

// ErrProviderUnavailable covers transport failures and non-2xx responses
// from the payment provider. Callers may retry; the client does not.
var ErrProviderUnavailable = errors.New("payment provider unavailable")

const macVersion = "1"

// Provider is the payment collaborator boundary: create a hosted-checkout
// transaction, read its authoritative state.
type Provider interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error)
	ReadState(ctx context.Context, transactionID int64) (string, error)
}

type CreateTransactionRequest struct {
	Amount     float64
	Currency   string
	Name       string
	SKU        string
	Reference  string
	SuccessURL string
	FailedURL  string
}

type Transaction struct {
	ID             int64
	State          string
	PaymentPageURL string
}

type lineItem struct {
	Name               string  `json:"name"`
	UniqueID           string  `json:"uniqueId"`
	SKU                string  `json:"sku"`
	Quantity           int     `json:"quantity"`
	AmountIncludingTax float64 `json:"amountIncludingTax"`
	Type               string  `json:"type"`
}

type transactionCreate struct {
	LineItems               []lineItem `json:"lineItems"`
	Currency                string     `json:"currency"`
	MerchantReference       string     `json:"merchantReference"`
	SuccessURL              string     `json:"successUrl"`
	FailedURL               string     `json:"failedUrl"`
	AutoConfirmationEnabled bool       `json:"autoConfirmationEnabled"`
}

type transactionRead struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

type Client struct {
	baseURL string
	spaceID int64
	userID  int64
	secret  []byte
	client  clients.HTTPClientI
	now     func() time.Time
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	// The provider issues the application key base64-encoded.
	secret, err := base64.StdEncoding.DecodeString(cfg.PaymentAuthKey)
	if err != nil {
		secret = []byte(cfg.PaymentAuthKey)
	}
	return &Client{
		baseURL: cfg.PaymentAddress,
		spaceID: cfg.PaymentSpaceID,
		userID:  cfg.PaymentUserID,
		secret:  secret,
		client:  client,
		now:     time.Now,
	}
}

func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	body := transactionCreate{
		LineItems: []lineItem{{
			Name:               req.Name,
			UniqueID:           fmt.Sprintf("%s-%d", req.SKU, c.now().UnixMilli()),
			SKU:                req.SKU,
			Quantity:           1,
			AmountIncludingTax: req.Amount,
			Type:               "PRODUCT",
		}},
		Currency:                req.Currency,
		MerchantReference:       req.Reference,
		SuccessURL:              req.SuccessURL,
		FailedURL:               req.FailedURL,
		AutoConfirmationEnabled: true,
	}

	path := fmt.Sprintf("/api/transaction/create?spaceId=%d", c.spaceID)
	var created transactionRead
	if err := c.call(ctx, http.MethodPost, path, body, &created); err != nil {
		return nil, err
	}

	pageURL, err := c.paymentPageURL(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment transaction created",
		zap.Int64("transactionID", created.ID),
		zap.String("reference", req.Reference),
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency),
	)
	return &Transaction{ID: created.ID, State: created.State, PaymentPageURL: pageURL}, nil
}

func (c *Client) ReadState(ctx context.Context, transactionID int64) (string, error) {
	path := fmt.Sprintf("/api/transaction/read?spaceId=%d&id=%d", c.spaceID, transactionID)
	var tx transactionRead
	if err := c.call(ctx, http.MethodGet, path, nil, &tx); err != nil {
		return "", err
	}
	return tx.State, nil
}

func (c *Client) paymentPageURL(ctx context.Context, transactionID int64) (string, error) {
	path := fmt.Sprintf("/api/transaction-payment-page/payment-page-url?spaceId=%d&id=%d", c.spaceID, transactionID)
	raw, err := c.raw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	// The endpoint answers with the bare URL, possibly JSON-quoted.
	var quoted string
	if json.Unmarshal(raw, &quoted) == nil {
		return quoted, nil
	}
	return string(bytes.TrimSpace(raw)), nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse provider response: %w", err)
	}
	return nil
}

func (c *Client) raw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode provider request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.sign(req, method, path)

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("provider request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		zap.L().Error("provider returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	return respBody, nil
}

// sign adds the provider's MAC headers: the value is an HMAC-SHA512 over
// version|userId|timestamp|method|path.
func (c *Client) sign(req *http.Request, method, path string) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	payload := macVersion + "|" + strconv.FormatInt(c.userID, 10) + "|" + timestamp + "|" + method + "|" + path

	mac := hmac.New(sha512.New, c.secret)
	mac.Write([]byte(payload))

	req.Header.Set("x-mac-version", macVersion)
	req.Header.Set("x-mac-userid", strconv.FormatInt(c.userID, 10))
	req.Header.Set("x-mac-timestamp", timestamp)
	req.Header.Set("x-mac-value", base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}
