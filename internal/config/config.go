package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
	RedisURL      string // Optional; in-memory session storage when empty

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Identity provider admin API (user metadata reads/writes)
	IdentityAPIURL    string
	IdentitySecretKey string

	// Completion API (OpenAI-compatible)
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration // Per-attempt bound; retries multiply it

	// Billing
	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceID       string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "KeywordForge"
	SiteTagline string // env: SITE_TAGLINE, default: "Keywords that fit your business"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:      getEnv("REDIS_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		IdentityAPIURL:    getEnv("IDENTITY_API_URL", "https://api.clerk.com"),
		IdentitySecretKey: getEnv("IDENTITY_SECRET_KEY", ""),

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout: getDuration("LLM_TIMEOUT_SECONDS", 20*time.Second),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripePriceID:       getEnv("STRIPE_PRICE_ID", ""),

		SiteTitle:   getEnv("SITE_TITLE", "KeywordForge"),
		SiteTagline: getEnv("SITE_TAGLINE", "Keywords that fit your business"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// BillingEnabled reports whether checkout and webhooks can be served.
func (c *Config) BillingEnabled() bool {
	return c.StripeSecretKey != "" && c.StripePriceID != ""
}
