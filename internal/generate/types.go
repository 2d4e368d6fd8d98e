package generate

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/fishkit/internal/refdata"
)

var (
	// ErrInvalidRequest wraps request validation failures
	ErrInvalidRequest = errors.New("generate: invalid request")
	// ErrNoZone is returned when no zone matches the requested area
	ErrNoZone = errors.New("generate: no matching zone")
	// ErrNoCardBin is returned when the bank issues no BIN of the requested type
	ErrNoCardBin = errors.New("generate: no matching card bin")
	// ErrBatchSize is returned for a batch count outside 1..max
	ErrBatchSize = errors.New("generate: batch size out of range")
)

// Gender selects the parity of the identity number's 17th digit.
type Gender string

const (
	GenderAny    Gender = "any"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

const (
	DefaultMinAge   = 18
	DefaultMaxAge   = 60
	DefaultMaxBatch = 100
)

// IDRequest describes the identity numbers to build. Zero ages select the
// default 18..60 window; an empty area picks any loaded zone.
type IDRequest struct {
	Area   string            `json:"area" validate:"omitempty,max=64"`
	Match  refdata.MatchType `json:"match" validate:"omitempty,oneof=EXACT FUZZY"`
	Gender Gender            `json:"gender" validate:"omitempty,oneof=any male female"`
	MinAge int               `json:"min_age" validate:"gte=0,lte=120"`
	MaxAge int               `json:"max_age" validate:"gte=0,lte=120,gtefield=MinAge"`
}

// CardRequest describes the bank card numbers to build. An empty card type
// means debit.
type CardRequest struct {
	Bank     string           `json:"bank" validate:"required,alphanum,max=16"`
	CardType refdata.CardType `json:"card_type" validate:"omitempty,oneof=DC CC SCC PC"`
}

// ZoneSource supplies administrative zones.
type ZoneSource interface {
	ZonesByArea(ctx context.Context, area string, match refdata.MatchType) ([]refdata.Zone, error)
	Zones(ctx context.Context) ([]refdata.Zone, error)
}

// BinSource supplies card BINs.
type BinSource interface {
	CardBinsByBank(ctx context.Context, bank string, cardType refdata.CardType) ([]refdata.CardBin, error)
}

// Source is everything the generator reads from reference data.
type Source interface {
	ZoneSource
	BinSource
}
