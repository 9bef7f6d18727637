package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultFeeRate is the processing fee recovered per complete transaction.
	DefaultFeeRate = "0.005"
)

var (
	ErrInvalidFeeRate  = errors.New("FEE_RATE must be a number in [0, 1)")
	ErrInvalidDBDriver = errors.New("DB_DRIVER must be sqlite or postgres")
	ErrInvalidLimit    = errors.New("limit must be positive")
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Scoring  ScoringConfig
	Upload   UploadConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ScoringConfig struct {
	FeeRate             decimal.Decimal
	DefaultTopMerchants int
}

type UploadConfig struct {
	MaxBytes int64
	MaxRows  int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			DSN:             getEnv("DB_DSN", "file:explorer.db?_foreign_keys=on"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Scoring: ScoringConfig{
			DefaultTopMerchants: getIntEnv("DEFAULT_TOP_MERCHANTS", 5),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
			MaxRows:  getIntEnv("MAX_UPLOAD_ROWS", 100000),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Logging: LoadLogging(),
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	feeRate, err := ParseFeeRate(getEnv("FEE_RATE", DefaultFeeRate))
	if err != nil {
		return nil, err
	}
	config.Scoring.FeeRate = feeRate

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadLogging reads only the logging settings, for commands that need no
// server or database configuration.
func LoadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDBDriver, c.Database.Driver)
	}

	if c.Scoring.DefaultTopMerchants <= 0 {
		return fmt.Errorf("DEFAULT_TOP_MERCHANTS: %w", ErrInvalidLimit)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES: %w", ErrInvalidLimit)
	}
	if c.Upload.MaxRows <= 0 {
		return fmt.Errorf("MAX_UPLOAD_ROWS: %w", ErrInvalidLimit)
	}
	return nil
}

// ParseFeeRate parses a fee rate and rejects values outside [0, 1).
func ParseFeeRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidFeeRate, raw)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidFeeRate, rate.String())
	}
	return rate, nil
}

// Address returns the host:port pair the HTTP server listens on.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
