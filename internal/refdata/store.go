// Package refdata provides SQLite-backed reference tables: administrative
// zone codes, bank card BINs and bank names.
package refdata

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/GriffinCanCode/fishkit/internal/infrastructure/logging"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var (
	//go:embed schema.sql
	schemaSQL string

	//go:embed seed.yaml
	seedYAML []byte
)

// Options configures Open.
type Options struct {
	Path   string // database file, MemoryPath when empty
	Seed   bool   // load the embedded rows into empty tables
	Logger *logging.Logger
}

// Store answers reference lookups.
type Store struct {
	sqlDB  *sql.DB
	logger *logging.Logger
}

type seedFile struct {
	Zones    []Zone    `yaml:"zones"`
	CardBins []CardBin `yaml:"cardbins"`
	Banks    []Bank    `yaml:"banks"`
}

// Open opens the store, creates missing tables and optionally seeds them.
func Open(ctx context.Context, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("refdata")

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = MemoryPath
	}
	dsn := path
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryPath {
		// every pooled connection to :memory: would see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{sqlDB: sqlDB, logger: logger}
	if opts.Seed {
		if err := s.seed(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.Info("Reference store ready", zap.String("path", path), zap.Bool("seed", opts.Seed))
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.sqlDB.PingContext(ctx)
}

// ZonesByArea returns zones whose note equals (MatchExact) or contains
// (MatchFuzzy) area, ordered by code and capped at MaxZoneResults.
func (s *Store) ZonesByArea(ctx context.Context, area string, match MatchType) ([]Zone, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	area = strings.TrimSpace(area)
	if area == "" {
		return nil, fmt.Errorf("%w: area is required", ErrEmptyQuery)
	}

	var query, arg string
	switch match {
	case MatchExact:
		query, arg = `SELECT zone, note FROM cn_idcard WHERE note = ? ORDER BY zone LIMIT ?`, area
	case MatchFuzzy:
		query, arg = `SELECT zone, note FROM cn_idcard WHERE note LIKE ? ORDER BY zone LIMIT ?`, "%"+area+"%"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatch, match)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, arg, MaxZoneResults)
	if err != nil {
		return nil, fmt.Errorf("query zones: %w", err)
	}
	defer rows.Close()

	zones := make([]Zone, 0)
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.Code, &z.Note); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate zones: %w", err)
	}

	s.logger.Debug("Zone lookup", zap.String("area", area), zap.String("match", string(match)), zap.Int("rows", len(zones)))
	return zones, nil
}

// ZoneCodeByArea returns the first matching zone code, or "" when none match.
func (s *Store) ZoneCodeByArea(ctx context.Context, area string, match MatchType) (string, error) {
	zones, err := s.ZonesByArea(ctx, area, match)
	if err != nil {
		return "", err
	}
	if len(zones) == 0 {
		return "", nil
	}
	return zones[0].Code, nil
}

// Zones returns every zone ordered by code.
func (s *Store) Zones(ctx context.Context) ([]Zone, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT zone, note FROM cn_idcard ORDER BY zone`)
	if err != nil {
		return nil, fmt.Errorf("query zones: %w", err)
	}
	defer rows.Close()

	var zones []Zone
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.Code, &z.Note); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// RandomZone picks a county-level zone (code not ending in "00") using
// SQLite's RANDOM(). It falls back to any zone when no district exists.
func (s *Store) RandomZone(ctx context.Context) (Zone, error) {
	if err := s.ready(ctx); err != nil {
		return Zone{}, err
	}

	var z Zone
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT zone, note FROM cn_idcard
		 ORDER BY CASE WHEN substr(zone, 5, 2) = '00' THEN 1 ELSE 0 END, RANDOM()
		 LIMIT 1`).Scan(&z.Code, &z.Note)
	if err == sql.ErrNoRows {
		return Zone{}, fmt.Errorf("%w: no zones loaded", ErrEmptyQuery)
	}
	if err != nil {
		return Zone{}, fmt.Errorf("random zone: %w", err)
	}
	return z, nil
}

// CardBinsByBank returns the BINs a bank issues for a card type.
func (s *Store) CardBinsByBank(ctx context.Context, bank string, cardType CardType) ([]CardBin, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	bank = strings.TrimSpace(bank)
	if bank == "" {
		return nil, fmt.Errorf("%w: bank is required", ErrEmptyQuery)
	}
	ct, err := ParseCardType(string(cardType))
	if err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT bin, bank, card_type, length FROM cn_cardbin
		 WHERE bank = ? AND card_type = ? ORDER BY bin`, bank, string(ct))
	if err != nil {
		return nil, fmt.Errorf("query card bins: %w", err)
	}
	defer rows.Close()

	bins := make([]CardBin, 0)
	for rows.Next() {
		var b CardBin
		var t string
		if err := rows.Scan(&b.BIN, &b.Bank, &t, &b.Length); err != nil {
			return nil, fmt.Errorf("scan card bin: %w", err)
		}
		b.CardType = CardType(t)
		bins = append(bins, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card bins: %w", err)
	}

	s.logger.Debug("Card bin lookup", zap.String("bank", bank), zap.String("card_type", string(ct)), zap.Int("rows", len(bins)))
	return bins, nil
}

// BanksByName returns the bank codes registered under an exact display name.
func (s *Store) BanksByName(ctx context.Context, name string) ([]Bank, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: bank name is required", ErrEmptyQuery)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT bank, bankname FROM cn_bankname WHERE bankname = ? ORDER BY bank`, name)
	if err != nil {
		return nil, fmt.Errorf("query banks: %w", err)
	}
	defer rows.Close()

	banks := make([]Bank, 0)
	for rows.Next() {
		var b Bank
		if err := rows.Scan(&b.Code, &b.Name); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return ErrClosed
	}
	return nil
}

func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cn_idcard`).Scan(&count); err != nil {
		return fmt.Errorf("count zones: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Reference tables already populated", zap.Int("zones", count))
		return nil
	}

	var data seedFile
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, z := range data.Zones {
		if _, err := tx.ExecContext(ctx, `INSERT INTO cn_idcard (zone, note) VALUES (?, ?)`, z.Code, z.Note); err != nil {
			return fmt.Errorf("seed zone %s: %w", z.Code, err)
		}
	}
	for _, b := range data.CardBins {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cn_cardbin (bin, bank, card_type, length) VALUES (?, ?, ?, ?)`,
			b.BIN, b.Bank, string(b.CardType), b.Length); err != nil {
			return fmt.Errorf("seed card bin %s: %w", b.BIN, err)
		}
	}
	for _, b := range data.Banks {
		if _, err := tx.ExecContext(ctx, `INSERT INTO cn_bankname (bank, bankname) VALUES (?, ?)`, b.Code, b.Name); err != nil {
			return fmt.Errorf("seed bank %s: %w", b.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	s.logger.Info("Seeded reference tables",
		zap.Int("zones", len(data.Zones)),
		zap.Int("card_bins", len(data.CardBins)),
		zap.Int("banks", len(data.Banks)))
	return nil
}
