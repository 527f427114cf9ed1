// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an API error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"
