package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New(&config.Config{
		AIAddress: "https://ai.example/v1",
		AIAPIKey:  "key",
		AIModel:   "gpt-4o-mini",
	}, httpClient)

	return client, httpClient
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_GenerateSEO(t *testing.T) {
	ctx := context.Background()
	products := []Product{{ID: "sku-1", Name: "Sneaker", Description: "red"}}
	targets := []string{"seoTitle", "seoShort"}

	t.Run("Returns the generated fields", func(t *testing.T) {
		client, httpClient := NewMock(t)

		content := `{\"results\":[{\"id\":\"sku-1\",\"seoTitle\":\"Red Sneaker\",\"seoShort\":\"A bold red sneaker.\"}]}`
		httpClient.EXPECT().Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "https://ai.example/v1/chat/completions", req.URL.String())
				assert.Equal(t, "Bearer key", req.Header.Get("Authorization"))
				body, _ := io.ReadAll(req.Body)
				assert.Contains(t, string(body), `"model":"gpt-4o-mini"`)
				assert.Contains(t, string(body), "seoTitle, seoShort")
				assert.Contains(t, string(body), "sku-1")
				return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"`+content+`"}}]}`), nil
			})

		results, err := client.GenerateSEO(ctx, products, targets, "en")
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "sku-1", results[0].ID)
		assert.Equal(t, "Red Sneaker", results[0].SEOTitle)
		assert.Equal(t, "A bold red sneaker.", results[0].SEOShort)
		assert.Empty(t, results[0].SEOLong)
	})

	t.Run("Transport failure", func(t *testing.T) {
		client, httpClient := NewMock(t)

		httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		results, err := client.GenerateSEO(ctx, products, targets, "en")
		assert.ErrorIs(t, err, ErrGenerationUnavailable)
		assert.Nil(t, results)
	})

	t.Run("Provider error status", func(t *testing.T) {
		client, httpClient := NewMock(t)

		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusTooManyRequests, `{}`), nil)

		results, err := client.GenerateSEO(ctx, products, targets, "en")
		assert.ErrorIs(t, err, ErrGenerationUnavailable)
		assert.Nil(t, results)
	})

	t.Run("Empty choice list", func(t *testing.T) {
		client, httpClient := NewMock(t)

		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusOK, `{"choices":[]}`), nil)

		results, err := client.GenerateSEO(ctx, products, targets, "en")
		assert.ErrorIs(t, err, ErrGenerationUnavailable)
		assert.Nil(t, results)
	})

	t.Run("Malformed generated content", func(t *testing.T) {
		client, httpClient := NewMock(t)

		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"not json"}}]}`), nil)

		results, err := client.GenerateSEO(ctx, products, targets, "en")
		assert.Error(t, err)
		assert.Nil(t, results)
	})
}
