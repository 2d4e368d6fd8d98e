package checksum

import (
	"fmt"
	"regexp"
)

const (
	// IDBodyLength is the number of digits covered by the check code
	IDBodyLength = 17
	// IDLength is the full identity number length including the check code
	IDLength = IDBodyLength + 1
)

var (
	idWeights = [IDBodyLength]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	idCodes   = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

	idBodyPattern = regexp.MustCompile(`^[1-9][0-9]{16}$`)
)

// IDCheckCode returns the check character for the first 17 digits of an
// identity number. The result is always uppercase ('X' for ten).
func IDCheckCode(first17 string) (byte, bool) {
	code, err := idCheckCode(first17)
	if err != nil {
		return 0, false
	}
	return code, true
}

// ValidIDNumber reports whether id18 is a well-formed identity number whose
// last character matches its computed check code. A lowercase 'x' is accepted.
func ValidIDNumber(id18 string) bool {
	return CheckIDNumber(id18) == nil
}

// CheckIDNumber is ValidIDNumber with a reason. The returned error wraps one
// of ErrInvalidLength, ErrInvalidFormat or ErrMismatch.
func CheckIDNumber(id string) error {
	if len(id) != IDLength {
		return fmt.Errorf("%w: identity number has %d characters, want %d", ErrInvalidLength, len(id), IDLength)
	}

	code, err := idCheckCode(id[:IDBodyLength])
	if err != nil {
		return err
	}

	last := upper(id[IDBodyLength])
	if !isIDCheckChar(last) {
		return fmt.Errorf("%w: identity number ends in %q, want a digit or 'X'", ErrInvalidFormat, id[IDBodyLength])
	}
	if last != code {
		return fmt.Errorf("%w: identity number ends in %q, want %q", ErrMismatch, id[IDBodyLength], code)
	}
	return nil
}

func idCheckCode(body string) (byte, error) {
	if len(body) != IDBodyLength {
		return 0, fmt.Errorf("%w: identity body has %d characters, want %d", ErrInvalidLength, len(body), IDBodyLength)
	}
	if !idBodyPattern.MatchString(body) {
		return 0, fmt.Errorf("%w: identity body must be 17 digits not starting with 0", ErrInvalidFormat)
	}

	sum := 0
	for i := 0; i < IDBodyLength; i++ {
		sum += int(body[i]-'0') * idWeights[i]
	}
	return idCodes[sum%11], nil
}

func isIDCheckChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == 'X'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
