package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment string      `json:"environment"`
	ServerPort  string      `json:"server_port"`
	APIBaseURL  string      `json:"api_base_url"`
	Redis       RedisConfig `json:"redis"`

	StripeSecretKey      string `json:"-"`
	StripePublishableKey string `json:"stripe_publishable_key"`

	SentryDSN string `json:"-"`

	// ReminderIntervalSec is how often the reminder worker scans the
	// cached calendar for due reminders.
	ReminderIntervalSec int `json:"reminder_interval_sec"`

	// RateLimitPerMinute caps mutations per company on the local surface.
	RateLimitPerMinute int `json:"rate_limit_per_minute"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("SERVER_PORT", "4000"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:5000/api"),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "true") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		ReminderIntervalSec:  getEnvAsInt("REMINDER_INTERVAL_SEC", 30),
		RateLimitPerMinute:   getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	// Validate required configurations
	if AppConfig.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if AppConfig.Environment == "production" {
		if AppConfig.SentryDSN == "" {
			return fmt.Errorf("SENTRY_DSN is required in production")
		}
		if AppConfig.StripeSecretKey == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required for price display in production")
		}
	}

	log.Printf("Configuration loaded (environment=%s, backend=%s)", AppConfig.Environment, AppConfig.APIBaseURL)
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}
