package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	GatewayREST = "rest"
	GatewayDB   = "db"

	BalanceAllTime      = "all_time"
	BalanceCalendarYear = "calendar_year"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port         string        `env:"PORT" envDefault:"3000"`
		ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
		IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	} `envPrefix:"SERVER_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"json"`
	} `envPrefix:"LOG_"`
	Auth struct {
		JWTSecret string `env:"JWT_SECRET"`
	} `envPrefix:"AUTH_"`
	Gateway struct {
		Mode string `env:"MODE" envDefault:"rest"`
	} `envPrefix:"GATEWAY_"`
	HRAPI struct {
		BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
		Token   string        `env:"TOKEN"`
		Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
	} `envPrefix:"HRAPI_"`
	Database struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		User     string `env:"USER" envDefault:"postgres"`
		Password string `env:"PASSWORD"`
		Name     string `env:"NAME" envDefault:"hris"`
		Port     string `env:"PORT" envDefault:"5432"`
		SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	} `envPrefix:"DB_"`
	Redis struct {
		Addr     string        `env:"ADDR"`
		Password string        `env:"PASSWORD"`
		PhotoTTL time.Duration `env:"PHOTO_TTL" envDefault:"168h"`
	} `envPrefix:"REDIS_"`
	Media struct {
		BaseOrigin  string `env:"BASE_ORIGIN" envDefault:"http://localhost:8080"`
		Placeholder string `env:"PLACEHOLDER_URL" envDefault:"/static/avatar-placeholder.png"`
	} `envPrefix:"MEDIA_"`
	Leave struct {
		AnnualAllowance  int    `env:"ANNUAL_ALLOWANCE" envDefault:"30"`
		AbsenceAllowance int    `env:"ABSENCE_ALLOWANCE" envDefault:"90"`
		SickAllowance    int    `env:"SICK_ALLOWANCE" envDefault:"30"`
		BalancePeriod    string `env:"BALANCE_PERIOD" envDefault:"all_time"`
	} `envPrefix:"LEAVE_"`
	RateLimit struct {
		PerSecond float64 `env:"PER_SECOND" envDefault:"10"`
		Burst     int     `env:"BURST" envDefault:"20"`
	} `envPrefix:"RATE_LIMIT_"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Gateway.Mode {
	case GatewayREST:
		if c.HRAPI.BaseURL == "" {
			return fmt.Errorf("config: HRAPI_BASE_URL is required in rest gateway mode")
		}
	case GatewayDB:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("config: DB_HOST and DB_NAME are required in db gateway mode")
		}
	default:
		return fmt.Errorf("config: unknown GATEWAY_MODE %q", c.Gateway.Mode)
	}

	switch c.Leave.BalancePeriod {
	case BalanceAllTime, BalanceCalendarYear:
	default:
		return fmt.Errorf("config: unknown LEAVE_BALANCE_PERIOD %q", c.Leave.BalancePeriod)
	}

	if c.Leave.AnnualAllowance < 0 || c.Leave.AbsenceAllowance < 0 || c.Leave.SickAllowance < 0 {
		return fmt.Errorf("config: leave allowances must not be negative")
	}
	return nil
}

// RequireAuth checks settings only the HTTP server needs.
func (c *Config) RequireAuth() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config: AUTH_JWT_SECRET must be at least 16 characters")
	}
	return nil
}
