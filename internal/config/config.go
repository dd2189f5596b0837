package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken      string        `env:"TELEGRAM_TOKEN"`
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	CalculatorBaseURL  string        `env:"CALCULATOR_BASE_URL"`
	RedisAddr          string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL           time.Duration `env:"REDIS_TTL" envDefault:"24h"`
	DBHost             string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort             int           `env:"DB_PORT" envDefault:"5432"`
	DBUser             string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword         string        `env:"DB_PASSWORD"`
	DBName             string        `env:"DB_NAME" envDefault:"autoquote"`
	DBSSLMode          string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBConnMaxIdleTime  time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"2m"`
	DBConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"2m"`
	AdminIDs           []int64       `env:"ADMIN_IDS" envSeparator:","`
	CRMBaseURL         string        `env:"CRM_BASE_URL"`
	CRMAPIKey          string        `env:"CRM_API_KEY"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	QuoteRateLimit     int64         `env:"QUOTE_RATE_LIMIT" envDefault:"30"`
	QuoteRateWindow    time.Duration `env:"QUOTE_RATE_WINDOW" envDefault:"1h"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment     bool          `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.QuoteRateLimit <= 0 {
		return errors.New("QUOTE_RATE_LIMIT must be positive")
	}
	if c.QuoteRateWindow <= 0 {
		return errors.New("QUOTE_RATE_WINDOW must be positive")
	}
	if c.DBMaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and %d", c.DBMaxOpenConns)
	}
	return nil
}

// DSN renders the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
