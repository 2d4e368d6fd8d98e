package id

import (
	"strings"

	"github.com/google/uuid"
)

// Kind selects the identifier flavour returned by NewUUID.
type Kind string

const (
	// KindTime is a version 1 UUID (timestamp + node)
	KindTime Kind = "time"
	// KindRandom is a version 4 UUID
	KindRandom Kind = "random"
	// KindSortable is a ULID
	KindSortable Kind = "sortable"
)

// ParseKind maps a name to a Kind. Unknown names map to KindRandom.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindTime:
		return KindTime
	case KindSortable:
		return KindSortable
	default:
		return KindRandom
	}
}

// NewUUID returns a fresh identifier of the given kind. Unknown kinds produce a
// random UUID.
func NewUUID(kind Kind) string {
	switch kind {
	case KindTime:
		return TimeUUID()
	case KindSortable:
		return Default().GenerateString()
	default:
		return RandomUUID()
	}
}

// TimeUUID returns a version 1 UUID. If the clock sequence cannot be
// initialised it degrades to a random UUID.
func TimeUUID() string {
	u, err := uuid.NewUUID()
	if err != nil {
		return RandomUUID()
	}
	return u.String()
}

// RandomUUID returns a version 4 UUID.
func RandomUUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID in canonical form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// UUIDVersion returns the version of a UUID string, or 0 if it does not parse.
func UUIDVersion(s string) int {
	u, err := uuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(u.Version())
}
