package checksum

import "fmt"

// CardCheckCode returns the Luhn check digit for body, the card number
// without its final digit. Body must be non-empty and all ASCII digits.
func CardCheckCode(body string) (byte, bool) {
	code, err := luhnCheckDigit(body)
	if err != nil {
		return 0, false
	}
	return code, true
}

// ValidCardNumber reports whether the last digit of number is the Luhn check
// digit of the digits before it.
func ValidCardNumber(number string) bool {
	return CheckCardNumber(number) == nil
}

// CheckCardNumber is ValidCardNumber with a reason.
func CheckCardNumber(number string) error {
	if len(number) < 2 {
		return fmt.Errorf("%w: card number needs at least 2 digits, got %d", ErrInvalidLength, len(number))
	}

	last := len(number) - 1
	code, err := luhnCheckDigit(number[:last])
	if err != nil {
		return err
	}
	if !isDigit(number[last]) {
		return fmt.Errorf("%w: card check digit %q is not a digit", ErrInvalidFormat, number[last])
	}
	if number[last] != code {
		return fmt.Errorf("%w: card number ends in %q, want %q", ErrMismatch, number[last], code)
	}
	return nil
}

// luhnCheckDigit walks the body right to left doubling every second digit,
// starting with the rightmost one, since the check digit will sit after it.
func luhnCheckDigit(body string) (byte, error) {
	if body == "" {
		return 0, fmt.Errorf("%w: card body is empty", ErrInvalidLength)
	}

	sum := 0
	double := true
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if !isDigit(c) {
			return 0, fmt.Errorf("%w: card body contains %q", ErrInvalidFormat, c)
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
