package generate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/fishkit/internal/checksum"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/internal/shared/id"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

const birthDateLayout = "20060102"

// Generator builds checksum-valid synthetic numbers.
type Generator struct {
	source   Source
	logger   *logging.Logger
	random   *digitSource
	now      func() time.Time
	hasher   *utils.Hasher
	maxBatch int
	validate *validator.Validate
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces crypto/rand as the randomness source.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.random = newDigitSource(r) }
}

// WithClock replaces time.Now for birth date windows.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithHasher sets the hasher used for log fingerprints.
func WithHasher(h *utils.Hasher) Option {
	return func(g *Generator) {
		if h != nil {
			g.hasher = h
		}
	}
}

// WithMaxBatch bounds the count accepted by the batch methods.
func WithMaxBatch(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxBatch = n
		}
	}
}

// NewGenerator creates a generator reading prefixes from source.
func NewGenerator(source Source, logger *logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	g := &Generator{
		source:   source,
		logger:   logger.Named("generate"),
		random:   newDigitSource(nil),
		now:      time.Now,
		hasher:   utils.DefaultHasher(),
		maxBatch: DefaultMaxBatch,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxBatch returns the largest count the batch methods accept.
func (g *Generator) MaxBatch() int {
	return g.maxBatch
}

// IDNumber returns one synthetic 18-character identity number.
func (g *Generator) IDNumber(ctx context.Context, req IDRequest) (string, error) {
	plan, err := g.planID(ctx, req)
	if err != nil {
		return "", err
	}
	number, err := plan.next()
	if err != nil {
		return "", err
	}
	g.logNumber("Generated identity number", number)
	return number, nil
}

// IDNumbers returns n synthetic identity numbers drawn from one request.
func (g *Generator) IDNumbers(ctx context.Context, req IDRequest, n int) ([]string, error) {
	if err := g.checkBatch(n); err != nil {
		return nil, err
	}
	plan, err := g.planID(ctx, req)
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number, err := plan.next()
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	g.logger.Info("Generated identity batch",
		zap.String("batch_id", id.NewBatchID().String()),
		zap.Int("count", n),
		zap.String("area", req.Area))
	return numbers, nil
}

// BankCard returns one synthetic Luhn-valid card number.
func (g *Generator) BankCard(ctx context.Context, req CardRequest) (string, error) {
	plan, err := g.planCard(ctx, req)
	if err != nil {
		return "", err
	}
	number, err := plan.next()
	if err != nil {
		return "", err
	}
	g.logNumber("Generated card number", number)
	return number, nil
}

// BankCards returns n synthetic card numbers for one bank and card type.
func (g *Generator) BankCards(ctx context.Context, req CardRequest, n int) ([]string, error) {
	if err := g.checkBatch(n); err != nil {
		return nil, err
	}
	plan, err := g.planCard(ctx, req)
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number, err := plan.next()
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	g.logger.Info("Generated card batch",
		zap.String("batch_id", id.NewBatchID().String()),
		zap.Int("count", n),
		zap.String("bank", req.Bank))
	return numbers, nil
}

func (g *Generator) checkBatch(n int) error {
	if n < 1 || n > g.maxBatch {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrBatchSize, n, g.maxBatch)
	}
	return nil
}

func (g *Generator) logNumber(msg, number string) {
	g.logger.Debug(msg,
		zap.String("fingerprint", g.hasher.Fingerprint(number)),
		zap.String("masked", utils.MaskNumber(number, 6, 2)))
}

// idPlan holds everything resolved once per request.
type idPlan struct {
	g        *Generator
	zones    []refdata.Zone
	gender   Gender
	earliest time.Time
	days     int
}

func (g *Generator) planID(ctx context.Context, req IDRequest) (*idPlan, error) {
	req.Area = strings.TrimSpace(req.Area)
	req.Match = refdata.MatchType(strings.ToUpper(string(req.Match)))
	if req.Match == "" {
		req.Match = refdata.MatchExact
	}
	if req.Gender == "" {
		req.Gender = GenderAny
	}
	if req.MinAge == 0 && req.MaxAge == 0 {
		req.MinAge, req.MaxAge = DefaultMinAge, DefaultMaxAge
	}
	if err := g.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var (
		zones []refdata.Zone
		err   error
	)
	if req.Area == "" {
		zones, err = g.source.Zones(ctx)
	} else {
		zones, err = g.source.ZonesByArea(ctx, req.Area, req.Match)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve zone: %w", err)
	}
	zones = preferDistricts(zones)
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoZone, req.Area)
	}

	y, m, d := g.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	latest := today.AddDate(-req.MinAge, 0, 0)
	earliest := today.AddDate(-(req.MaxAge + 1), 0, 1)

	return &idPlan{
		g:        g,
		zones:    zones,
		gender:   req.Gender,
		earliest: earliest,
		days:     int(latest.Sub(earliest).Hours() / 24),
	}, nil
}

func (p *idPlan) next() (string, error) {
	r := p.g.random

	zi, err := r.intn(len(p.zones))
	if err != nil {
		return "", err
	}
	offset, err := r.intn(p.days + 1)
	if err != nil {
		return "", err
	}
	birth := p.earliest.AddDate(0, 0, offset)

	seq, err := r.digits(2)
	if err != nil {
		return "", err
	}

	var genderDigit byte
	switch p.gender {
	case GenderMale:
		genderDigit, err = r.pick("13579")
	case GenderFemale:
		genderDigit, err = r.pick("02468")
	default:
		genderDigit, err = r.pick("0123456789")
	}
	if err != nil {
		return "", err
	}

	body := p.zones[zi].Code + birth.Format(birthDateLayout) + seq + string(genderDigit)
	code, ok := checksum.IDCheckCode(body)
	if !ok {
		return "", fmt.Errorf("%w: zone %q does not form a valid identity body", ErrNoZone, p.zones[zi].Code)
	}
	return body + string(code), nil
}

// preferDistricts keeps county-level zones (code not ending in "00") when
// any exist, since province and city codes are rarely issued directly.
func preferDistricts(zones []refdata.Zone) []refdata.Zone {
	districts := make([]refdata.Zone, 0, len(zones))
	for _, z := range zones {
		if len(z.Code) == 6 && !strings.HasSuffix(z.Code, "00") {
			districts = append(districts, z)
		}
	}
	if len(districts) > 0 {
		return districts
	}
	valid := zones[:0:0]
	for _, z := range zones {
		if len(z.Code) == 6 {
			valid = append(valid, z)
		}
	}
	return valid
}

type cardPlan struct {
	g    *Generator
	bins []refdata.CardBin
}

func (g *Generator) planCard(ctx context.Context, req CardRequest) (*cardPlan, error) {
	req.Bank = strings.ToUpper(strings.TrimSpace(req.Bank))
	req.CardType = refdata.CardType(strings.ToUpper(string(req.CardType)))
	if req.CardType == "" {
		req.CardType = refdata.CardDebit
	}
	if err := g.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	bins, err := g.source.CardBinsByBank(ctx, req.Bank, req.CardType)
	if err != nil {
		return nil, fmt.Errorf("resolve card bin: %w", err)
	}

	usable := make([]refdata.CardBin, 0, len(bins))
	for _, b := range bins {
		if b.Length > len(b.BIN) {
			usable = append(usable, b)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoCardBin, req.Bank, req.CardType)
	}
	return &cardPlan{g: g, bins: usable}, nil
}

func (p *cardPlan) next() (string, error) {
	r := p.g.random

	bi, err := r.intn(len(p.bins))
	if err != nil {
		return "", err
	}
	bin := p.bins[bi]

	fill, err := r.digits(bin.Length - 1 - len(bin.BIN))
	if err != nil {
		return "", err
	}
	body := bin.BIN + fill
	code, ok := checksum.CardCheckCode(body)
	if !ok {
		return "", fmt.Errorf("%w: bin %q is not numeric", ErrNoCardBin, bin.BIN)
	}
	return body + string(code), nil
}
