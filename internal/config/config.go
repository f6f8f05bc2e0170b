package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application. Values come
// from the environment (optionally seeded from a .env file); the static site
// identity lives in site.yaml and is loaded separately, see site.go.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	SessionSecret string

	// Content store (Sanity).
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityTimeout    time.Duration

	// Revalidation window for resolved content.
	ContentTTL time.Duration

	// Transactional email collaborator.
	EmailProvider    string
	EmailAPIKey      string
	EmailSender      string
	ContactRecipient string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		SanityProjectID:  getEnv("SANITY_PROJECT_ID", "5x0wp0xx"),
		SanityDataset:    getEnv("SANITY_DATASET", "production"),
		SanityAPIVersion: getEnv("SANITY_API_VERSION", "2024-01-01"),
		SanityToken:      os.Getenv("SANITY_API_TOKEN"),
		SanityTimeout:    getEnvDuration("SANITY_TIMEOUT_SECONDS", 10*time.Second),

		ContentTTL: getEnvDuration("CONTENT_REVALIDATE_SECONDS", 60*time.Second),

		EmailProvider:    getEnv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:      os.Getenv("RESEND_API_KEY"),
		EmailSender:      getEnv("EMAIL_SENDER", "Portfolio Contact <contact@bruce.fikanova.co.ke>"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "cmbruce1015@gmail.com"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using an insecure development default")
		cfg.SessionSecret = "insecure-dev-session-secret"
	}

	if cfg.SanityProjectID == "" || cfg.SanityDataset == "" {
		log.Fatal("Required environment variables SANITY_PROJECT_ID or SANITY_DATASET are not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		log.Printf("Invalid value for %s: %q, using default", key, v)
		return fallback
	}
	return time.Duration(secs) * time.Second
}
