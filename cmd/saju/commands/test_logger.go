package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Logger 기능 테스트",
	Long: `구조화된 로깅 기능을 테스트합니다.

이 명령어는:
- JSON/Console 포맷 테스트
- 로그 레벨 테스트
- 구조화된 필드 로깅
- 에러 컨텍스트 로깅

Example:
  go run ./cmd/saju test-logger
  go run ./cmd/saju test-logger --env production`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Saju Logger Test ===")

	// Test 1: JSON Format (Production)
	fmt.Println("1. JSON Format (Production)")
	fmt.Println("--------------------------------")
	testJSONFormat()
	fmt.Println()

	// Test 2: Console Format (Development)
	fmt.Println("2. Console Format (Development)")
	fmt.Println("--------------------------------")
	testConsoleFormat()
	fmt.Println()

	// Test 3: Structured Logging
	fmt.Println("3. Structured Logging with Fields")
	fmt.Println("--------------------------------")
	testStructuredLogging()
	fmt.Println()

	// Test 4: Error Logging
	fmt.Println("4. Error Logging")
	fmt.Println("--------------------------------")
	testErrorLogging()
	fmt.Println()

	fmt.Println("✅ All logger tests completed!")
	return nil
}

func testJSONFormat() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)
	log.Info("Service started")
	log.Warn("Slow solar term search")
	log.Error("Failed to load timezone data")
}

func testConsoleFormat() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "debug",
		LogFormat: "console",
	}

	log := logger.New(cfg)
	log.Debug("Debugging application flow")
	log.Info("Chart request received")
	log.Warn("Lunar conversion out of table range")
}

func testStructuredLogging() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	// Single field
	chartLog := log.WithField("preset", "traditional")
	chartLog.Info("Chart composed")

	// Multiple fields
	pillarLog := log.WithFields(map[string]interface{}{
		"year":  "己卯",
		"month": "丙子",
		"day":   "戊午",
		"hour":  "辛酉",
	})
	pillarLog.Info("Analysis completed")

	// Chained fields
	log.WithField("component", "astro").
		WithField("term", "입춘").
		Info("Crossing located")
}

func testErrorLogging() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "error",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	// Simple error
	err := errors.New("bracket does not contain the target longitude")
	log.WithError(err).Error("Failed to locate solar term")

	// Error with context
	log.WithError(err).
		WithFields(map[string]interface{}{
			"target_deg": 315.0,
			"expansions": 10,
		}).
		Error("Bisection gave up after bracket expansions")
}
