package dto

type PricingRequestDTO struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Tokens           int64    `json:"tokens"`
	Amount           float64  `json:"amount"`
	Features         []string `json:"features"`
}

type PricingResponseDTO struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Tokens           int64    `json:"tokens"`
	Amount           float64  `json:"amount"`
	Features         []string `json:"features"`
}

type CostsRequestDTO struct {
	PerImageRequest *int64 `json:"per_image_request"`
	PerImage        *int64 `json:"per_image"`
	PerSEOInput     *int64 `json:"per_seo_input"`
	PerSEOOutput    *int64 `json:"per_seo_output"`
}

type CostsResponseDTO struct {
	ID              int   `json:"id"`
	PerImageRequest int64 `json:"per_image_request"`
	PerImage        int64 `json:"per_image"`
	PerSEOInput     int64 `json:"per_seo_input"`
	PerSEOOutput    int64 `json:"per_seo_output"`
}
