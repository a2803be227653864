package utils

import "github.com/google/uuid"

// NewID returns a random UUID string, unique for the lifetime of the process.
func NewID() string {
	return uuid.NewString()
}
