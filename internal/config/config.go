package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	APIBaseURL          string        `env:"API_BASE_URL,required,notEmpty"`
	APIKey              string        `env:"API_KEY,required,notEmpty"`
	HTTPRequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	CollaboratorTimeout time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"10s"`
	SubmitTimeout       time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"90s"`
	SubmitLockTTL       time.Duration `env:"SUBMIT_LOCK_TTL" envDefault:"2m"`

	RedisAddr     string        `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL" envDefault:"24h"`
	AddressTTL    time.Duration `env:"ADDRESS_CACHE_TTL" envDefault:"24h"`

	Database Database `envPrefix:"DB_"`

	TelegramToken     string `env:"TELEGRAM_TOKEN"`
	TelegramChannelID int64  `env:"TELEGRAM_CHANNEL_ID" envDefault:"0"`

	RateLimitPerSecond float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	SubmitLimit        int64         `env:"SUBMIT_LIMIT" envDefault:"5"`
	SubmitWindow       time.Duration `env:"SUBMIT_WINDOW" envDefault:"10m"`
}

type Database struct {
	Host            string        `env:"HOST,required,notEmpty"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER,required,notEmpty"`
	Password        string        `env:"PASSWORD,required,notEmpty"`
	Name            string        `env:"NAME,required,notEmpty"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"2m"`
}

// DSN is the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.TelegramChannelID != 0 && cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required when TELEGRAM_CHANNEL_ID is set")
	}

	// A lock that expires mid-send lets a second submission through.
	if cfg.SubmitTimeout >= cfg.SubmitLockTTL {
		return nil, fmt.Errorf("SUBMIT_TIMEOUT (%s) must be shorter than SUBMIT_LOCK_TTL (%s)",
			cfg.SubmitTimeout, cfg.SubmitLockTTL)
	}

	return &cfg, nil
}

// LoadDatabase reads only the DB_ settings, for tools that need nothing else.
func LoadDatabase() (*Database, error) {
	_ = godotenv.Load()

	var db Database
	if err := env.ParseWithOptions(&db, env.Options{Prefix: "DB_"}); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	return &db, nil
}
