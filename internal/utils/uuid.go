package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers for users and posts.
//
// Ids are UUID v7, so they sort by creation time and break ties in the
// newest-first post listing. If the v7 clock source fails a random v4 is
// returned instead.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return new(UUIDGenerator)
}

// Generate returns a new id in canonical string form.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
