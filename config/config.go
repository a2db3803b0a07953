package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	GitHub   GitHubConfig
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"SERVER_PORT" env-default:"5000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

// Addr returns the host:port pair the server listens on
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DatabaseConfig selects and configures the gorm dialector
type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" env-default:"postgres"`
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER" env-default:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" env-default:"devconnector"`
	SSLMode    string `env:"DB_SSL_MODE" env-default:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" env-default:"devconnector.db"`
}

// DSN returns the lib/pq connection string for the postgres driver
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// RedisConfig configures the optional Redis instance backing the rate limiter
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`

	// AuthRateLimit is the number of login/register attempts allowed per
	// client IP in AuthRateWindow. Zero disables the limiter.
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT" env-default:"20"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" env-default:"15m"`
}

// Enabled reports whether a Redis endpoint was configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

// AuthConfig holds token and password hashing parameters
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"JWT_TTL" env-default:"36000s"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`
	// TokenHeader is the request header carrying the raw token
	TokenHeader string `env:"TOKEN_HEADER" env-default:"x-auth-token"`
}

// GitHubConfig configures the repository listing passthrough
type GitHubConfig struct {
	APIURL   string        `env:"GITHUB_API_URL" env-default:"https://api.github.com"`
	ClientID string        `env:"GITHUB_CLIENT_ID"`
	Secret   string        `env:"GITHUB_SECRET"`
	Timeout  time.Duration `env:"GITHUB_TIMEOUT" env-default:"10s"`
}

// LoadConfig builds the configuration from a .env file (outside production
// and CI), environment variables and Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development || env == Test {
		// .env is optional; existing variables always win
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	applySecrets(cfg)

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applySecrets overrides sensitive values with Docker secrets when present
func applySecrets(cfg *Config) {
	secrets := map[string]*string{
		"jwt_secret":     &cfg.Auth.JWTSecret,
		"db_password":    &cfg.Database.Password,
		"redis_password": &cfg.Redis.Password,
		"github_secret":  &cfg.GitHub.Secret,
	}
	for name, field := range secrets {
		if value := readSecret(name); value != "" {
			*field = value
		}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
