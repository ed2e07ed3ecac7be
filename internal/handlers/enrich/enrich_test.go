package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/search"
	"github.com/seoforge/seoforge/internal/service/enrichservice"
	"github.com/seoforge/seoforge/internal/service/ledgerservice"
	"github.com/seoforge/seoforge/pkg/auth"
)

func NewMock(t *testing.T) (*EnrichHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestSearchImagesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful search",
			body: `{"query":"red sneakers","count":10}`,
			prepareMock: func() {
				service.EXPECT().
					SearchImages(authedCtx(1), 1, "red sneakers", 10).
					Return([]search.Image{{Title: "sneaker", Link: "https://img.example/1.jpg"}}, int64(15), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"query":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Empty query",
			body: `{"query":"","count":10}`,
			prepareMock: func() {
				service.EXPECT().
					SearchImages(authedCtx(1), 1, "", 10).
					Return(nil, int64(0), enrichservice.ErrInvalidEnrichRequest)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid enrichment request",
		},
		{
			name: "Insufficient balance",
			body: `{"query":"red sneakers","count":10}`,
			prepareMock: func() {
				service.EXPECT().
					SearchImages(authedCtx(1), 1, "red sneakers", 10).
					Return(nil, int64(0), ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name: "Search provider unavailable",
			body: `{"query":"red sneakers","count":10}`,
			prepareMock: func() {
				service.EXPECT().
					SearchImages(authedCtx(1), 1, "red sneakers", 10).
					Return(nil, int64(15), search.ErrSearchUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "image search unavailable",
		},
		{
			name: "Internal server error",
			body: `{"query":"red sneakers","count":10}`,
			prepareMock: func() {
				service.EXPECT().
					SearchImages(authedCtx(1), 1, "red sneakers", 10).
					Return(nil, int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/enrich/images", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx(1))
			w := httptest.NewRecorder()

			handler.SearchImages(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ImageSearchResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Images, 1)
				assert.Equal(t, int64(15), body.TokensUsed)
			}
		})
	}
}

func TestGenerateSEOHandler(t *testing.T) {
	handler, service := NewMock(t)

	products := []ai.Product{{ID: "sku-1", Name: "Sneaker"}}
	targets := []string{"seoTitle"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful generation",
			body: `{"products":[{"id":"sku-1","name":"Sneaker"}],"targets":["seoTitle"],"language":"en"}`,
			prepareMock: func() {
				service.EXPECT().
					GenerateSEO(authedCtx(1), 1, products, targets, "en").
					Return([]ai.SEOResult{{ID: "sku-1", SEOTitle: "Red Sneaker"}}, int64(5), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"products":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Generation provider unavailable",
			body: `{"products":[{"id":"sku-1","name":"Sneaker"}],"targets":["seoTitle"],"language":"en"}`,
			prepareMock: func() {
				service.EXPECT().
					GenerateSEO(authedCtx(1), 1, products, targets, "en").
					Return(nil, int64(5), ai.ErrGenerationUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "text generation unavailable",
		},
		{
			name: "Cost table not configured",
			body: `{"products":[{"id":"sku-1","name":"Sneaker"}],"targets":["seoTitle"],"language":"en"}`,
			prepareMock: func() {
				service.EXPECT().
					GenerateSEO(authedCtx(1), 1, products, targets, "en").
					Return(nil, int64(0), enrichservice.ErrCostsNotConfigured)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "cost table not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/enrich/seo", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx(1))
			w := httptest.NewRecorder()

			handler.GenerateSEO(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.SEOResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Results, 1)
				assert.Equal(t, "Red Sneaker", body.Results[0].SEOTitle)
			}
		})
	}
}

func TestFileCountHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the counter", func(t *testing.T) {
		service.EXPECT().GetFileCount(authedCtx(1), 1).
			Return(&domain.FileCount{UserID: 1, Count: 12}, nil)

		r := httptest.NewRequest(http.MethodGet, "/enrich/files", nil)
		r = r.WithContext(authedCtx(1))
		w := httptest.NewRecorder()

		handler.FileCount(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.FileCountResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(12), body.Count)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().GetFileCount(authedCtx(1), 1).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/enrich/files", nil)
		r = r.WithContext(authedCtx(1))
		w := httptest.NewRecorder()

		handler.FileCount(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
