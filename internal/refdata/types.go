package refdata

import (
	"errors"
	"fmt"
	"strings"
)

// MaxZoneResults caps list-style zone lookups.
const MaxZoneResults = 20

var (
	// ErrEmptyQuery is returned when a lookup key is blank
	ErrEmptyQuery = errors.New("refdata: empty query")
	// ErrUnknownMatch is returned for a match type other than EXACT or FUZZY
	ErrUnknownMatch = errors.New("refdata: unknown match type")
	// ErrUnknownCardType is returned for an unsupported card type code
	ErrUnknownCardType = errors.New("refdata: unknown card type")
	// ErrClosed is returned by any call on a closed or nil store
	ErrClosed = errors.New("refdata: store is closed")
)

// MatchType selects how an area name is compared with zone notes.
type MatchType string

const (
	MatchExact MatchType = "EXACT"
	MatchFuzzy MatchType = "FUZZY"
)

// ParseMatchType accepts the match names case-insensitively; blank means exact.
func ParseMatchType(s string) (MatchType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(MatchExact):
		return MatchExact, nil
	case string(MatchFuzzy):
		return MatchFuzzy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatch, s)
	}
}

// CardType is the card product code stored with each BIN.
type CardType string

const (
	CardDebit      CardType = "DC"
	CardCredit     CardType = "CC"
	CardSemiCredit CardType = "SCC"
	CardPrepaid    CardType = "PC"
)

// ParseCardType validates a card type code.
func ParseCardType(s string) (CardType, error) {
	ct := CardType(strings.ToUpper(strings.TrimSpace(s)))
	switch ct {
	case CardDebit, CardCredit, CardSemiCredit, CardPrepaid:
		return ct, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCardType, s)
	}
}

// Zone is one administrative division code and its full name.
type Zone struct {
	Code string `json:"zone" yaml:"zone"`
	Note string `json:"note" yaml:"note"`
}

// CardBin is an issuer prefix with the card length it produces.
type CardBin struct {
	BIN      string   `json:"bin" yaml:"bin"`
	Bank     string   `json:"bank" yaml:"bank"`
	CardType CardType `json:"card_type" yaml:"card_type"`
	Length   int      `json:"length" yaml:"length"`
}

// Bank maps a bank code to its display name.
type Bank struct {
	Code string `json:"bank" yaml:"bank"`
	Name string `json:"bankname" yaml:"bankname"`
}
