package models

import "time"

// ContactMessage is a message submitted through the public contact form.
// The admin surface only lists and deletes these.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking is a course booking request from the public site. CourseTitle is
// projected from the referenced course at read time and is not stored.
type Booking struct {
	ID          string    `json:"id"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Message     string    `json:"message"`
	CourseID    string    `json:"courseId,omitempty"`
	CourseTitle string    `json:"courseTitle"`
	CreatedAt   time.Time `json:"createdAt"`
}
