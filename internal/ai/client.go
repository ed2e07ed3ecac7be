package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/pkg/clients"
)

var ErrGenerationUnavailable = errors.New("text generation unavailable")

const (
	maxTitleLen = 60
	maxShortLen = 120
	maxLongLen  = 220
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type SEOResult struct {
	ID       string `json:"id"`
	SEOTitle string `json:"seoTitle,omitempty"`
	SEOShort string `json:"seoShort,omitempty"`
	SEOLong  string `json:"seoLong,omitempty"`
}

// Client calls the chat-completions collaborator to produce SEO copy.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.AIAddress,
		apiKey:  cfg.AIAPIKey,
		model:   cfg.AIModel,
		client:  client,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat any           `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) GenerateSEO(ctx context.Context, products []Product, targets []string, language string) ([]SEOResult, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(targets)},
			{Role: "user", Content: userPrompt(products, language)},
		},
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("generation request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("generation returned error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrGenerationUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}

	var out struct {
		Results []SEOResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("failed to parse generated content: %w", err)
	}
	return out.Results, nil
}

func systemPrompt(targets []string) string {
	return strings.Join([]string{
		"You are an SEO copywriter.",
		`Output ONLY valid JSON of the form {"results": [{"id", "seoTitle", "seoShort", "seoLong"}]}.`,
		fmt.Sprintf("Targets: %s.", strings.Join(targets, ", ")),
		fmt.Sprintf("Limits: seoTitle <= %d, seoShort <= %d, seoLong <= %d characters.", maxTitleLen, maxShortLen, maxLongLen),
		"Each requested field must be semantically distinct from the others.",
	}, " ")
}

func userPrompt(products []Product, language string) string {
	encoded, _ := json.Marshal(products)
	return fmt.Sprintf("Write the requested SEO fields in %s for these products: %s", language, encoded)
}
