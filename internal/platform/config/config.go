package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store backends.
const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Practice backend
	BackendBaseURL  string
	BackendTimeout  time.Duration
	BackendRetryMax int

	// Browser session token
	JWTSecret              string
	JWTExpiryDuration      time.Duration
	JWTIssuer              string
	RememberExpiryDuration time.Duration

	SessionStore     string
	RedisURL         string
	DatabaseURL      string
	MutationGuardTTL time.Duration

	LoginRateLimit     string // ulule formatted rate, e.g. "10-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	MFAIssuer          string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:4000/api")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("BACKEND_RETRY_MAX", 2)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "practice-tool-client")
	viper.SetDefault("REMEMBER_EXPIRY_DURATION", "720h")
	viper.SetDefault("SESSION_STORE", SessionStoreMemory)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MUTATION_GUARD_TTL", "30s")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("MFA_ISSUER", "Practice Tool")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BackendBaseURL = strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/")
	if cfg.BackendBaseURL == "" {
		log.Println("Warning: BACKEND_BASE_URL environment variable not set.")
	}
	cfg.BackendTimeout = durationOr("BACKEND_TIMEOUT", 15*time.Second)
	cfg.BackendRetryMax = viper.GetInt("BACKEND_RETRY_MAX")
	if cfg.BackendRetryMax < 0 {
		cfg.BackendRetryMax = 0
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", 8*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "practice-tool-client"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	cfg.RememberExpiryDuration = durationOr("REMEMBER_EXPIRY_DURATION", 30*24*time.Hour)

	cfg.SessionStore = strings.ToLower(viper.GetString("SESSION_STORE"))
	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreRedis, SessionStorePostgres:
	default:
		log.Printf("Warning: unknown SESSION_STORE ('%s'). Defaulting to %s.\n", cfg.SessionStore, SessionStoreMemory)
		cfg.SessionStore = SessionStoreMemory
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.SessionStore == SessionStoreRedis && cfg.RedisURL == "" {
		log.Println("Warning: SESSION_STORE is redis but REDIS_URL is not set.")
	}
	if cfg.SessionStore == SessionStorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: SESSION_STORE is postgres but PGSQL_URL is not set.")
	}
	cfg.MutationGuardTTL = durationOr("MUTATION_GUARD_TTL", 30*time.Second)

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.MFAIssuer = viper.GetString("MFA_ISSUER")

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
