package utils

import "github.com/google/uuid"

// NewID returns a fresh uuid string for entity primary keys.
func NewID() string {
	return uuid.NewString()
}
