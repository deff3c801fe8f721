package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Efficiency EfficiencyConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" env-default:"hangerline"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`
	MaxConns int32  `env:"DB_MAX_CONNS" env-default:"25"`
	MinConns int32  `env:"DB_MIN_CONNS" env-default:"5"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET_KEY"`
	AccessExpiration string `env:"JWT_ACCESS_EXPIRATION_TIME" env-default:"8h"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int           `env:"APP_PORT" env-default:"8080"`
	Env            string        `env:"APP_ENV" env-default:"development"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	AllowedOrigins []string      `env:"APP_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	ReadTimeout    time.Duration `env:"APP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout   time.Duration `env:"APP_WRITE_TIMEOUT" env-default:"30s"`
	QueryTimeout   time.Duration `env:"APP_QUERY_TIMEOUT" env-default:"15s"`
}

// EfficiencyConfig is the business policy the aggregation engine runs with.
type EfficiencyConfig struct {
	EligibleIDPrefix  string   `env:"EFF_ELIGIBLE_ID_PREFIX" env-default:"10613"`
	ShiftMinutes      float64  `env:"EFF_SHIFT_MINUTES" env-default:"480"`
	HeadcountFloor    int      `env:"EFF_HEADCOUNT_FLOOR" env-default:"1"`
	CapPct            float64  `env:"EFF_CAP_PCT" env-default:"200"`
	DefaultSMV        float64  `env:"EFF_DEFAULT_SMV" env-default:"1.5"`
	DefaultConversion float64  `env:"EFF_DEFAULT_CONVERSION" env-default:"1.0"`
	WIPOperations     []string `env:"EFF_WIP_OPERATIONS" env-separator:"," env-default:"Loading/Panel Segregation,Garment Insert in Poly Bag & Close"`
	Lines             []string `env:"EFF_LINES" env-separator:"," env-default:"line-21,line-22,line-23,line-24,line-25,line-26,line-27,line-28,line-29,line-30,line-31,line-32"`
	TrendDays         int      `env:"EFF_TREND_DAYS" env-default:"30"`
	DefaultWindowDays int      `env:"EFF_DEFAULT_WINDOW_DAYS" env-default:"1"`
	Timezone          string   `env:"EFF_TIMEZONE" env-default:"Local"`

	// SMVRefresh is how often the standard-minute table is reloaded; 0 reads it on every request.
	SMVRefresh time.Duration `env:"EFF_SMV_REFRESH_INTERVAL" env-default:"5m"`
}

// Location resolves the configured timezone used to decide what "today" is.
func (e EfficiencyConfig) Location() (*time.Location, error) {
	if e.Timezone == "" || e.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(e.Timezone)
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	} else if err != nil {
		slog.Info("No .env file found, reading process environment only")
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	return c.Efficiency.Validate()
}

// Validate checks the efficiency policy for values the engine cannot work with.
func (e EfficiencyConfig) Validate() error {
	if e.ShiftMinutes <= 0 {
		return fmt.Errorf("EFF_SHIFT_MINUTES must be positive")
	}
	if e.HeadcountFloor < 0 {
		return fmt.Errorf("EFF_HEADCOUNT_FLOOR must not be negative")
	}
	if e.CapPct <= 0 {
		return fmt.Errorf("EFF_CAP_PCT must be positive")
	}
	if len(e.Lines) == 0 {
		return fmt.Errorf("EFF_LINES is required")
	}
	if len(e.WIPOperations) == 0 {
		return fmt.Errorf("EFF_WIP_OPERATIONS is required")
	}
	if e.TrendDays <= 0 {
		return fmt.Errorf("EFF_TREND_DAYS must be positive")
	}
	if e.DefaultWindowDays <= 0 {
		return fmt.Errorf("EFF_DEFAULT_WINDOW_DAYS must be positive")
	}
	if e.SMVRefresh < 0 {
		return fmt.Errorf("EFF_SMV_REFRESH_INTERVAL must not be negative")
	}
	if _, err := e.Location(); err != nil {
		return fmt.Errorf("invalid EFF_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
