package dto

// SliderCreateRequest carries the multipart form fields for a new slider.
type SliderCreateRequest struct {
	Title string `form:"title"`
}

// SliderUpdateRequest carries a partial slider update.
type SliderUpdateRequest struct {
	Title *string `form:"title"`
}
