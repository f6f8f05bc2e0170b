package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContactResponse acknowledges an accepted contact submission. Reference is
// the server-assigned id returned so the sender can quote it in follow-ups.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}
