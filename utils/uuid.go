package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string used for bid ids,
// session tokens and toast ids.
func GenerateID() string {
	return uuid.New().String()
}
