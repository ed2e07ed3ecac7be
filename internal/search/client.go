package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/pkg/clients"
)

var ErrSearchUnavailable = errors.New("image search unavailable")

// Client queries the image-search collaborator (Custom Search style API).
type Client struct {
	baseURL string
	apiKey  string
	cx      string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.SearchAddress,
		apiKey:  cfg.SearchAPIKey,
		cx:      cfg.SearchCX,
		client:  client,
	}
}

type Image struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type searchResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
		Image struct {
			ThumbnailLink string `json:"thumbnailLink"`
		} `json:"image"`
	} `json:"items"`
}

func (c *Client) SearchImages(ctx context.Context, query string, count int) ([]Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.cx)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("num", strconv.Itoa(count))

	statusCode, respBody, _, err := c.client.Get(c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		zap.L().Error("image search request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("image search returned error status", zap.Int("status", statusCode))
		return nil, fmt.Errorf("%w: status %d", ErrSearchUnavailable, statusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	images := make([]Image, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		images = append(images, Image{
			Title:     item.Title,
			Link:      item.Link,
			Thumbnail: item.Image.ThumbnailLink,
		})
	}
	return images, nil
}
