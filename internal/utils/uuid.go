package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly uploaded files. File IDs are
// generated client-side before the upload request so the server never picks
// names for encrypted blobs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID string. V7 identifiers are time-ordered, which
// keeps server-side blob listings roughly chronological. On the rare entropy
// failure it falls back to a random V4 string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
