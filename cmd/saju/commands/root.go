package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "saju",
	Short: "사주 명식 계산 엔진",
	Long: `Saju Unified CLI

태양 황경 기반 사주 계산 엔진.
절기 계산부터 사주 조립, 십신/신강약/용신/합충형파해/신살 분석까지.

Usage:
  go run ./cmd/saju [command]

Examples:
  go run ./cmd/saju api
  go run ./cmd/saju chart --birth 2000-01-01T18:00
  go run ./cmd/saju analyze 己卯 丙子 戊午 辛酉
  go run ./cmd/saju terms`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
