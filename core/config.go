package core

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultSymbols is the roster synchronized when SYNC_SYMBOLS is not set.
var DefaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "META", "NVDA", "TSLA", "JPM", "V", "WMT"}

// Config holds runtime configuration read from the environment.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Port        string `envconfig:"PORT" default:"8080"`

	FMPAPIKey  string        `envconfig:"FMP_API_KEY" required:"true"`
	FMPBaseURL string        `envconfig:"FMP_BASE_URL" default:"https://financialmodelingprep.com/api/v3"`
	FMPTimeout time.Duration `envconfig:"FMP_TIMEOUT" default:"30s"`

	// The store settings are checked by InitDB, so commands that never open
	// the store run without them.
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Empty means every origin is allowed outside production.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	SyncSymbols    []string      `envconfig:"SYNC_SYMBOLS"`
	SyncAllSymbols bool          `envconfig:"SYNC_ALL_SYMBOLS" default:"false"`
	SyncPeriod     string        `envconfig:"SYNC_PERIOD" default:"annual"`
	SyncDelay      time.Duration `envconfig:"SYNC_DELAY" default:"1s"`
}

var ErrMissingAPIKey = errors.New("FMP_API_KEY not found")

// LoadConfig loads .env, if present, and reads the configuration from the
// environment.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.FMPAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if len(cfg.SyncSymbols) == 0 {
		cfg.SyncSymbols = DefaultSymbols
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.Environment == "production"
}
