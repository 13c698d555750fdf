package models

import "time"

// SeoEntry holds per-page SEO metadata.
type SeoEntry struct {
	ID          string    `json:"id"`
	Page        string    `json:"page"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
