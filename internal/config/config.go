package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config represents the full application configuration surface.
type Config struct {
	Simulation SimulationConfig
	Demand     DemandConfig
	Autoplay   AutoplayConfig
	Log        LogConfig
	MongoDB    MongoDBConfig
	Sheets     SheetsConfig
}

// SimulationConfig holds the opening state of the shop and the run horizon.
type SimulationConfig struct {
	Days           int
	Budget         decimal.Decimal
	Capacity       decimal.Decimal
	InitialStock   int
	StrictCapacity bool
	Interactive    bool
}

// DemandConfig bounds the random customer demand.
type DemandConfig struct {
	Seed                uint64
	MinOrdersPerDay     int
	MaxOrdersPerDay     int
	MinQuantityPerOrder int
	MaxQuantityPerOrder int
}

// AutoplayConfig holds scheduler-related settings. An empty schedule runs
// the days back to back.
type AutoplayConfig struct {
	CronSchedule string
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// MongoDBConfig holds settings for the optional MongoDB report sink.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether the MongoDB sink is configured.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the spreadsheet sink is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" || c.SpreadsheetID != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	var p parser
	cfg := &Config{
		Simulation: SimulationConfig{
			Days:           p.int("SHOP_DAYS", 10),
			Budget:         p.decimal("SHOP_BUDGET", "300"),
			Capacity:       p.decimal("SHOP_CAPACITY", "100"),
			InitialStock:   p.int("SHOP_INITIAL_STOCK", 120),
			StrictCapacity: p.bool("SHOP_STRICT_CAPACITY", false),
			Interactive:    p.bool("SHOP_INTERACTIVE", true),
		},
		Demand: DemandConfig{
			Seed:                p.uint64("SHOP_SEED", 123),
			MinOrdersPerDay:     p.int("SHOP_MIN_ORDERS", 3),
			MaxOrdersPerDay:     p.int("SHOP_MAX_ORDERS", 12),
			MinQuantityPerOrder: p.int("SHOP_MIN_QTY", 1),
			MaxQuantityPerOrder: p.int("SHOP_MAX_QTY", 6),
		},
		Autoplay: AutoplayConfig{
			CronSchedule: os.Getenv("SHOP_AUTOPLAY_SCHEDULE"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "shopsim"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
	}

	if p.err != nil {
		return nil, p.err
	}

	// Autoplay advances days without a terminal attached.
	if cfg.Autoplay.CronSchedule != "" {
		cfg.Simulation.Interactive = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and consistent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Simulation.Days <= 0 {
		return errors.New("SHOP_DAYS must be > 0")
	}

	if c.Simulation.Capacity.IsNegative() {
		return errors.New("SHOP_CAPACITY must not be negative")
	}

	if c.Simulation.InitialStock < 0 {
		return errors.New("SHOP_INITIAL_STOCK must not be negative")
	}

	switch {
	case c.Demand.MinOrdersPerDay <= 0:
		return errors.New("SHOP_MIN_ORDERS must be > 0")
	case c.Demand.MaxOrdersPerDay <= c.Demand.MinOrdersPerDay:
		return errors.New("SHOP_MAX_ORDERS must be > SHOP_MIN_ORDERS")
	case c.Demand.MinQuantityPerOrder <= 0:
		return errors.New("SHOP_MIN_QTY must be > 0")
	case c.Demand.MaxQuantityPerOrder < c.Demand.MinQuantityPerOrder:
		return errors.New("SHOP_MAX_QTY must be >= SHOP_MIN_QTY")
	}

	if c.Log.Level == "" {
		return errors.New("LOG_LEVEL must not be empty")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided with MONGODB_URI")
	}

	if c.Sheets.Enabled() {
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parser reads typed variables and keeps the first conversion error.
type parser struct {
	err error
}

func (p *parser) int(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return fallback
	}
	return value
}

func (p *parser) uint64(key string, fallback uint64) uint64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		p.fail(key, raw, err)
		return fallback
	}
	return value
}

func (p *parser) bool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return fallback
	}
	return value
}

func (p *parser) decimal(key, fallback string) decimal.Decimal {
	raw := strings.TrimSpace(getenvWithDefault(key, fallback))
	value, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(key, raw, err)
		return decimal.Zero
	}
	return value
}

func (p *parser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
}
