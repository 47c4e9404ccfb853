package utils

import "github.com/google/uuid"

// NewID returns prefix followed by a random UUID.
func NewID(prefix string) string {
	return prefix + uuid.New().String()
}
