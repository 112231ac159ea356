package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GoEnv       string
	FrontendURL string
	// Database Configuration
	DBUrl                 string
	DBUrlEnvVar           string
	UseEncryptedTransport bool
	// Reddit Identity Verification (client-credentials app)
	RedditClientID     string
	RedditClientSecret string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	goEnv := getEnv("GO_ENV", "development")

	// Test runs get their own database so fixtures never touch real applicants.
	dbURLEnvVar := "DATABASE_URL"
	if goEnv == "test" {
		dbURLEnvVar = "TEST_DATABASE_URL"
	}
	dbURL := getEnv(dbURLEnvVar, "")

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		GoEnv:                 goEnv,
		FrontendURL:           strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		DBUrl:                 dbURL,
		DBUrlEnvVar:           dbURLEnvVar,
		UseEncryptedTransport: isManagedDatabaseHost(dbURL),
		RedditClientID:        getEnv("REDDIT_CLIENT_ID", ""),
		RedditClientSecret:    getEnv("REDDIT_CLIENT_SECRET", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// A missing connection string is surfaced per-request as a 500, never as a
	// startup crash, so only warn here.
	if cfg.DBUrl == "" {
		log.Println("WARNING: database connection string is missing. Persistence operations will fail.")
	}
	if cfg.RedditClientID == "" || cfg.RedditClientSecret == "" {
		log.Println("WARNING: Reddit credentials not configured. Identity verification will fail closed.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// isManagedDatabaseHost reports whether the connection string points at the
// managed Supabase deployment, which requires encrypted transport. Local and
// CI databases connect in the clear.
func isManagedDatabaseHost(connString string) bool {
	if connString == "" {
		return false
	}
	u, err := url.Parse(connString)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return strings.HasSuffix(host, ".supabase.co") || strings.HasSuffix(host, ".supabase.com")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
