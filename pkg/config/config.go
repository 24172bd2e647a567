package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Hedge calculator defaults
	Hedge HedgeConfig

	// Demo sample generator
	Sample SampleConfig

	// HTTP API
	API APIConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// HedgeConfig holds the calculator defaults used when a request omits a value
type HedgeConfig struct {
	Capital         float64
	Leverage        float64
	Asset1Vol       float64 // annualized, percent
	Asset2Vol       float64 // annualized, percent
	UseComputedBeta bool
	VaRConfidence   float64
}

// SampleConfig holds random-walk demo generator defaults
type SampleConfig struct {
	Period int
	Seed   int64
}

// APIConfig holds HTTP server limits
type APIConfig struct {
	RateLimit       float64 // requests per second
	RateBurst       int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Hedge: HedgeConfig{
			Capital:         getEnvAsFloat("HEDGE_CAPITAL", 10000),
			Leverage:        getEnvAsFloat("HEDGE_LEVERAGE", 1),
			Asset1Vol:       getEnvAsFloat("HEDGE_ASSET1_VOL", 70),
			Asset2Vol:       getEnvAsFloat("HEDGE_ASSET2_VOL", 90),
			UseComputedBeta: getEnvAsBool("HEDGE_USE_COMPUTED_BETA", true),
			VaRConfidence:   getEnvAsFloat("HEDGE_VAR_CONFIDENCE", 0.95),
		},

		Sample: SampleConfig{
			Period: getEnvAsInt("SAMPLE_PERIOD", 30),
			Seed:   int64(getEnvAsInt("SAMPLE_SEED", 0)),
		},

		API: APIConfig{
			RateLimit:       getEnvAsFloat("API_RATE_LIMIT", 20),
			RateBurst:       getEnvAsInt("API_RATE_BURST", 40),
			ReadTimeout:     getEnvAsDuration("API_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("API_WRITE_TIMEOUT", "15s"),
			ShutdownTimeout: getEnvAsDuration("API_SHUTDOWN_TIMEOUT", "10s"),
			MaxBodyBytes:    int64(getEnvAsInt("API_MAX_BODY_BYTES", 4<<20)),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Hedge.Capital <= 0 {
		return fmt.Errorf("HEDGE_CAPITAL must be > 0")
	}
	if c.Hedge.Leverage <= 0 {
		return fmt.Errorf("HEDGE_LEVERAGE must be > 0")
	}
	if c.Hedge.Asset1Vol <= 0 || c.Hedge.Asset2Vol <= 0 {
		return fmt.Errorf("HEDGE_ASSET1_VOL and HEDGE_ASSET2_VOL must be > 0")
	}
	if c.Hedge.VaRConfidence <= 0 || c.Hedge.VaRConfidence >= 1 {
		return fmt.Errorf("HEDGE_VAR_CONFIDENCE must be between 0 and 1")
	}

	if c.Sample.Period < 2 {
		return fmt.Errorf("SAMPLE_PERIOD must be >= 2")
	}

	if c.API.RateLimit <= 0 || c.API.RateBurst <= 0 {
		return fmt.Errorf("API_RATE_LIMIT and API_RATE_BURST must be > 0")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
