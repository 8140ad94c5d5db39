package utils

import "github.com/google/uuid"

// NewRequestID returns the correlation id attached to every outgoing request
// and threaded through the logs.
func NewRequestID() string {
	return uuid.New().String()
}
