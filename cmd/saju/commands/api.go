package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/saju/internal/api"
	"github.com/wonny/saju/internal/api/handlers"
	"github.com/wonny/saju/internal/lunar"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 사주 조립/분석 엔드포인트 제공
- 절기 조회 엔드포인트 제공

Endpoints:
  GET  /health             - Health check
  POST /api/saju/chart     - 사주 조립
  POST /api/saju/analysis  - 사주 분석
  GET  /api/saju/terms     - 절기 조회

Example:
  go run ./cmd/saju api
  go run ./cmd/saju api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: 설정값)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Saju API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port":   cfg.Port,
		"env":    cfg.Env,
		"preset": cfg.Chart.Preset,
	}).Info("Initializing API server")

	// 3. Create the time provider and lunar converter
	provider := stdclock.NewProvider()
	converter := lunar.NewConverter()

	// 4. Create the four pillars composer
	composer := pillars.NewComposer(provider, converter, log)

	// 5. Create handler
	sajuHandler := handlers.NewSajuHandler(cfg, log, composer, provider)

	// 6. Create router
	router := api.NewRouter(sajuHandler, cfg, log)

	// 7. Create server
	server := api.New(cfg, log, router)

	// 8. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/saju/chart")
	fmt.Println("  POST /api/saju/analysis")
	fmt.Println("  GET  /api/saju/terms")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
