package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// safeCharsPattern matches strings made only of letters, digits and _ , - . |
var safeCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9_,\-.|]+$`)

// AnyBlank reports whether any value is empty or whitespace-only.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// AllSafe reports whether the concatenation of values contains only
// characters from the safe set. An empty concatenation is not safe.
func AllSafe(values ...string) bool {
	return safeCharsPattern.MatchString(strings.Join(values, ""))
}

// AllDigits reports whether every value is non-empty and made of digits.
// It is vacuously true for no values.
func AllDigits(values ...string) bool {
	return allRunes(values, unicode.IsDigit)
}

// AllLetters reports whether every value is non-empty and made of letters.
// Letters include non-Latin scripts.
func AllLetters(values ...string) bool {
	return allRunes(values, unicode.IsLetter)
}

func allRunes(values []string, pred func(rune) bool) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
		for _, r := range v {
			if !pred(r) {
				return false
			}
		}
	}
	return true
}
