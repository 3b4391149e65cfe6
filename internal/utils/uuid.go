package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers used for request tracing.
// Preferring v7 keeps generated IDs time-ordered, so trace IDs sort
// chronologically in log storage.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID string, falling back to a random v4 when the
// monotonic v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
