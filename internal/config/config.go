package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppHost string
	AppPort string
	GinMode string

	LogLevel  string
	LogFormat string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	TokenCache    string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessTTL     time.Duration
	JWTRefreshTTL    time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GitHubClientID     string
	GitHubClientSecret string
	GitHubRedirectURL  string

	CORSAllowedOrigin string
}

func Load() (*Config, error) {
	accessTTL, err := ParseDuration(getEnv("JWT_ACCESS_EXPIRES_IN", "1h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_ACCESS_EXPIRES_IN: %w", err)
	}
	refreshTTL, err := ParseDuration(getEnv("JWT_REFRESH_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
	}

	cfg := &Config{
		AppHost: getEnv("APP_HOST", "0.0.0.0"),
		AppPort: getEnv("APP_PORT", "3011"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5435"),
		DBUser:     getEnv("DB_USER", "taskuser"),
		DBPassword: getEnv("DB_PASSWORD", "taskpassword"),
		DBName:     getEnv("DB_NAME", "task_management_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		TokenCache:    getEnv("TOKEN_CACHE", "redis"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPoolSize: getEnvInt("REDIS_POOL_SIZE", 10),

		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", "default-access-secret-change-me"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "default-refresh-secret-change-me"),
		JWTAccessTTL:     accessTTL,
		JWTRefreshTTL:    refreshTTL,

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "postmessage"),
		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		GitHubRedirectURL:  getEnv("GITHUB_REDIRECT_URL", ""),

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.TokenCache {
	case "redis", "memory":
	default:
		return fmt.Errorf("unsupported TOKEN_CACHE %q", c.TokenCache)
	}
	if len(c.JWTAccessSecret) < 16 || len(c.JWTRefreshSecret) < 16 {
		return fmt.Errorf("JWT secrets must be at least 16 characters")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return fmt.Errorf("JWT access and refresh secrets must differ")
	}
	if c.JWTAccessTTL <= 0 || c.JWTRefreshTTL <= 0 {
		return fmt.Errorf("JWT lifetimes must be positive")
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// RedisAddr is the host:port of the token cache.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// ParseDuration accepts the lifetime notation used by the JWT settings:
// a number followed by s, m, h or d (days), or a bare number of seconds.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	unit := time.Second
	number := value
	switch value[len(value)-1] {
	case 's':
		number = value[:len(value)-1]
	case 'm':
		unit, number = time.Minute, value[:len(value)-1]
	case 'h':
		unit, number = time.Hour, value[:len(value)-1]
	case 'd':
		unit, number = 24*time.Hour, value[:len(value)-1]
	}

	n, err := strconv.Atoi(number)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return time.Duration(n) * unit, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
