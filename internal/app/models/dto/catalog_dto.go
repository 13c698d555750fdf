package dto

// TitleCreateRequest creates a course or keyword entry.
type TitleCreateRequest struct {
	Title string `json:"title"`
}

// TitleUpdateRequest carries a partial update for a title-only entry.
type TitleUpdateRequest struct {
	Title *string `json:"title"`
}
