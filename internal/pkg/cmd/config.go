package cmd

import (
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/klwxsrx/farm-expense-tracker/pkg/env"
	"github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

const (
	defaultLoginRateLimit = 1
	defaultLoginRateBurst = 5
	defaultCORSOrigin     = "http://localhost:5173"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Environment       Environment
	HTTPAddress       string
	CORSDefaultOrigin string
	JWTSecret         string
	LoginRateLimit    rate.Limit
	LoginRateBurst    int
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func ParseConfig() (Config, error) {
	environment, err := env.ParseWithDefault("APP_ENV", string(EnvironmentDevelopment))
	if err != nil {
		return Config{}, err
	}
	if environment != string(EnvironmentDevelopment) && environment != string(EnvironmentProduction) {
		return Config{}, fmt.Errorf("%w: unknown APP_ENV %s", ErrInvalidConfig, environment)
	}

	jwtSecret, err := env.Parse[string]("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}
	if jwtSecret == "" {
		return Config{}, fmt.Errorf("%w: JWT_SECRET is empty", ErrInvalidConfig)
	}

	httpAddress, err := env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress)
	if err != nil {
		return Config{}, err
	}

	corsDefaultOrigin, err := env.ParseWithDefault("CORS_DEFAULT_ORIGIN", defaultCORSOrigin)
	if err != nil {
		return Config{}, err
	}

	loginRateLimit, err := env.ParseWithDefault[float64]("LOGIN_RATE_LIMIT", defaultLoginRateLimit)
	if err != nil {
		return Config{}, err
	}

	loginRateBurst, err := env.ParseWithDefault("LOGIN_RATE_BURST", defaultLoginRateBurst)
	if err != nil {
		return Config{}, err
	}
	if loginRateLimit <= 0 || loginRateBurst <= 0 {
		return Config{}, fmt.Errorf("%w: login rate limit must be positive", ErrInvalidConfig)
	}

	return Config{
		Environment:       Environment(environment),
		HTTPAddress:       httpAddress,
		CORSDefaultOrigin: corsDefaultOrigin,
		JWTSecret:         jwtSecret,
		LoginRateLimit:    rate.Limit(loginRateLimit),
		LoginRateBurst:    loginRateBurst,
	}, nil
}
