package dto

// SeoCreateRequest creates an SEO metadata entry for a page.
type SeoCreateRequest struct {
	Page        string `json:"page"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SeoUpdateRequest carries a partial update; nil fields keep their stored
// values.
type SeoUpdateRequest struct {
	Page        *string `json:"page"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
