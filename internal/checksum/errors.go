package checksum

import "errors"

var (
	// ErrInvalidLength is returned when the input has the wrong number of characters
	ErrInvalidLength = errors.New("checksum: invalid length")
	// ErrInvalidFormat is returned when the input contains disallowed characters
	ErrInvalidFormat = errors.New("checksum: invalid format")
	// ErrMismatch is returned when the existing check character is wrong
	ErrMismatch = errors.New("checksum: check code mismatch")
)
