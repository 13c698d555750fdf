package dto

// ContentCreateRequest carries the multipart form fields for creating a
// blog, service or about entry. The optional image part is read separately
// from the multipart body.
type ContentCreateRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// ContentUpdateRequest carries a partial update; nil fields keep their
// stored values.
type ContentUpdateRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}
