package models

// LoginResponse is returned by a successful POST /auth/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// MessageResponse is a plain acknowledgment, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the structured error payload of every failed request.
// Errors is only filled for validation failures.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
