package utils

import "strings"

// CharClass names a character class that ContainsClass can search for.
type CharClass string

const (
	CharChinese CharClass = "chinese"
	CharDigit   CharClass = "digit"
)

// ContainsClass reports whether s contains at least one character of class.
// Chinese means the CJK Unified Ideographs range U+4E00 to U+9FA5. Unknown
// classes never match.
func ContainsClass(s string, class CharClass) bool {
	switch class {
	case CharChinese:
		return strings.IndexFunc(s, func(r rune) bool { return r >= 0x4E00 && r <= 0x9FA5 }) >= 0
	case CharDigit:
		return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
	default:
		return false
	}
}
