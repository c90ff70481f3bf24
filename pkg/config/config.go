package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Chart defaults (사주 계산 기본값)
	Chart ChartConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// ChartConfig holds default parameters for chart calculation
type ChartConfig struct {
	Preset        string  // standard | traditional
	LongitudeDeg  float64 // 기본 경도 (서울 126.978)
	TzOffsetHours float64 // 기본 타임존 오프셋 (KST +9)
	Zone          string  // IANA 타임존 이름
}

// RateLimitConfig holds in-process API rate limit parameters
type RateLimitConfig struct {
	Enabled bool
	RPS     float64 // requests per second
	Burst   int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8085"),
		Env:  getEnv("ENV", "development"),

		// Chart defaults
		Chart: ChartConfig{
			Preset:        getEnv("SAJU_PRESET", "standard"),
			LongitudeDeg:  getEnvAsFloat("SAJU_LONGITUDE", 126.978),
			TzOffsetHours: getEnvAsFloat("SAJU_TZ_OFFSET", 9.0),
			Zone:          getEnv("SAJU_ZONE", "Asia/Seoul"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RPS:     getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 40),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	// Validate chart preset
	if c.Chart.Preset != "standard" && c.Chart.Preset != "traditional" {
		return fmt.Errorf("SAJU_PRESET must be one of: standard, traditional")
	}

	// Longitude must be a real Earth longitude
	if c.Chart.LongitudeDeg < -180 || c.Chart.LongitudeDeg > 180 {
		return fmt.Errorf("SAJU_LONGITUDE must be within [-180, 180]")
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
			filepath.Join(exeDir, "..", "..", ".env"),
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
