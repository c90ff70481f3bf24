package main

import (
	"os"

	"github.com/wonny/saju/cmd/saju/commands"
)

// main is the entry point for the saju CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/saju [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
