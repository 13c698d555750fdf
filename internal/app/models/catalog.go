package models

import "time"

// TitleEntry is the shared record shape of the title-only collections
// (courses, keywords).
type TitleEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
