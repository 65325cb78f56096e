package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string        `env:"PORT" envDefault:"8080"`
	DatabaseType   string        `env:"DB_TYPE" envDefault:"sqlite"`
	DatabasePath   string        `env:"DB_PATH" envDefault:"./kanjiquest.db"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"./migrations"`
	TuningPath     string        `env:"TUNING_PATH" envDefault:"./tuning.yaml"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment    string        `env:"APP_ENV" envDefault:"development"`
	AWSRegion      string        `env:"AWS_REGION" envDefault:"us-east-1"`
	SESFromEmail   string        `env:"SES_FROM_EMAIL"`
	SESFromName    string        `env:"SES_FROM_NAME" envDefault:"KanjiQuest"`
	ReportSchedule string        `env:"REPORT_SCHEDULE" envDefault:"0 18 * * 0"`
	RandomSeed     int64         `env:"RANDOM_SEED"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
	BadWordsURL    string        `env:"BAD_WORDS_URL" envDefault:"https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"20"`
	RateWindow     time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DatabaseType)
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for %s", cfg.DatabaseType)
	}
	return cfg, nil
}
