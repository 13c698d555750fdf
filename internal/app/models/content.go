package models

import "time"

// ContentEntry is the shared record shape of the title/description/image
// collections (blogs, services, abouts). Each collection has its own table;
// the shape and lifecycle are identical.
type ContentEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
