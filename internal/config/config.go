package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "default-jwt-secret-change-in-production"

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8000"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName      string `env:"DB_NAME" envDefault:"vanta"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	JWTSecret          string `env:"JWT_SECRET_KEY" envDefault:"default-jwt-secret-change-in-production"`
	JWTExpirationHours int    `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`

	AdminUserIDs []uint `env:"ADMIN_USER_IDS" envSeparator:","`

	BankName          string `env:"BANK_NAME" envDefault:"Woori Bank"`
	BankAccountNumber string `env:"BANK_ACCOUNT_NUMBER" envDefault:"1002-83863-3924"`
	BankAccountHolder string `env:"BANK_ACCOUNT_HOLDER" envDefault:"Vanta"`
	PaymentAmount     int    `env:"PAYMENT_AMOUNT" envDefault:"25000"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.IsProduction() {
		if err := cfg.validateProduction(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN returns the postgres connection string, preferring DATABASE_URL when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func (c *Config) validateProduction() error {
	var problems []string

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is not set")
	}
	if c.JWTSecret == defaultJWTSecret {
		problems = append(problems, "JWT_SECRET_KEY is using the default value")
	}
	if len(c.JWTSecret) < 32 {
		problems = append(problems, "JWT_SECRET_KEY should be at least 32 characters long")
	}
	for _, origin := range c.AllowedOrigins {
		if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			problems = append(problems, "ALLOWED_ORIGINS contains a localhost origin")
			break
		}
	}

	if len(problems) > 0 {
		return errors.New("production configuration errors: " + strings.Join(problems, "; "))
	}
	return nil
}
