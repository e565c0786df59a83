package contact

// ContactRequest represents a contact form submission.
//
// Field constraints are checked by the form validator rather than binding
// tags so that each rule produces its fixed user-facing message and the
// checks run in a defined order. Website is a honeypot: humans never see the
// field, so any non-blank value marks the submission as bot traffic.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website,omitempty"`
}

// ContactResponse represents the outcome returned to the form UI.
// Exactly one of Message or Error is set.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
