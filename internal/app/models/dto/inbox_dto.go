package dto

// ContactSubmitRequest is the public contact form payload.
type ContactSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BookingSubmitRequest is the public course booking payload.
type BookingSubmitRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Message   string `json:"message"`
	CourseID  string `json:"courseId"`
}
