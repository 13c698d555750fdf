package dto

// MessageResponse is the confirmation body for successful deletes and other
// side-effect-only operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body the panels parse.
type ErrorResponse struct {
	Error string `json:"error"`
}
