package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// requirements lists, per environment, the settings that must not be empty
var requirements = map[Environment][]string{
	Development: {"JWT_SECRET"},
	Test:        {"JWT_SECRET"},
	CI:          {"JWT_SECRET", "DB_PASSWORD"},
	Production:  {"JWT_SECRET", "DB_PASSWORD", "DB_HOST"},
}

// ValidateConfig checks the configuration against the requirements of env
func ValidateConfig(cfg *Config, env Environment) error {
	var errs ValidationErrors

	values := map[string]string{
		"JWT_SECRET":  cfg.Auth.JWTSecret,
		"DB_PASSWORD": cfg.Database.Password,
		"DB_HOST":     cfg.Database.Host,
	}
	for _, name := range requirements[env] {
		if name == "DB_PASSWORD" || name == "DB_HOST" {
			if cfg.Database.Driver != "postgres" {
				continue
			}
		}
		if values[name] == "" {
			errs = append(errs, ValidationError{Field: name, Message: "is required in " + env.String()})
		}
	}

	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.Database.Driver)})
	}

	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "JWT_TTL", Message: "must be positive"})
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, ValidationError{
			Field:   "BCRYPT_COST",
			Message: fmt.Sprintf("must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost),
		})
	}
	if cfg.Auth.TokenHeader == "" {
		errs = append(errs, ValidationError{Field: "TOKEN_HEADER", Message: "must not be empty"})
	}
	if cfg.Redis.AuthRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "AUTH_RATE_LIMIT", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
