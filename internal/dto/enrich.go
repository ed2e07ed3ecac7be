package dto

import (
	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/search"
)

type ImageSearchRequestDTO struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type ImageSearchResponseDTO struct {
	Images     []search.Image `json:"images"`
	TokensUsed int64          `json:"tokens_used"`
}

type SEORequestDTO struct {
	Products []ai.Product `json:"products"`
	Targets  []string     `json:"targets"`
	Language string       `json:"language"`
}

type SEOResponseDTO struct {
	Results    []ai.SEOResult `json:"results"`
	TokensUsed int64          `json:"tokens_used"`
}
