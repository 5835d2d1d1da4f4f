package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const (
	AuthModeFirebase = "firebase"
	AuthModeJWT      = "jwt"
)

type Config struct {
	// Database
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBConnectTimeout time.Duration

	// Auth
	AuthMode          string
	FirebaseProjectID string
	JWTSecret         string

	// Server
	Port               string
	CORSOrigins        string
	RateLimitPerMinute int
	BodyLimitBytes     int

	// Observability
	LogRetentionDays int
	SentryDSN        string
	AppEnv           string
}

func Load() *Config {
	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "workout_logger"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBConnectTimeout: parseDuration(getEnv("DB_CONNECT_TIMEOUT", "30s"), 30*time.Second),

		AuthMode:          getEnv("AUTH_MODE", AuthModeFirebase),
		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),

		Port:               getEnv("PORT", "5000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "120"), 120),
		BodyLimitBytes:     parseInt(getEnv("BODY_LIMIT_BYTES", "1048576"), 1024*1024),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		AppEnv:           getEnv("APP_ENV", "development"),
	}
}

// Validate reports the first setting that prevents the server from starting.
func (c *Config) Validate() error {
	if c.DBPassword == "" {
		return errors.New("DB_PASSWORD environment variable is required")
	}
	switch c.AuthMode {
	case AuthModeFirebase:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID environment variable is required when AUTH_MODE=firebase")
		}
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET environment variable is required when AUTH_MODE=jwt")
		}
	default:
		return errors.New("AUTH_MODE must be one of: firebase, jwt")
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
