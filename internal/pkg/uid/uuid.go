package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUID strings, optionally behind a fixed prefix.
type UUID struct {
	prefix string
}

// NewUUID returns a generator of bare UUIDs.
func NewUUID() *UUID {
	return &UUID{}
}

// NewPrefixedUUID returns a generator whose ids start with prefix, for ids
// that should reveal where they were minted (e.g. "log-").
func NewPrefixedUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate returns a UUIDv7, or a UUIDv4 if the v7 clock read fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return u.prefix + id.String()
}
