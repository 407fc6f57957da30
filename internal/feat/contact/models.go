package contact

import (
	"encoding/json"
	"time"
)

// Submission represents a stored contact form entry.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Services  []string  `json:"services"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedSubmission is the create response payload: the assigned ID plus the
// submitted values exactly as they arrived. Fields missing from the request
// are omitted.
type CreatedSubmission struct {
	ID       int64           `json:"id"`
	Name     json.RawMessage `json:"name,omitempty"`
	Email    json.RawMessage `json:"email,omitempty"`
	Phone    json.RawMessage `json:"phone,omitempty"`
	Services json.RawMessage `json:"services,omitempty"`
	Message  json.RawMessage `json:"message,omitempty"`
}

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
