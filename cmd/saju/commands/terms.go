package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/saju/internal/astro"
	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

// termsCmd represents the terms command
var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "절기 조회",
	Long: `조회 시점의 절기 정보를 보여줍니다.

표시 정보:
- 현재 태양 황경
- 직전 통과 절기와 다음 절기
- 직전/다음 절(월 경계를 정하는 12절)

Example:
  go run ./cmd/saju terms
  go run ./cmd/saju terms --at 2000-01-01T18:00 --zone Asia/Seoul`,
	RunE: runTerms,
}

var (
	termsAt   string
	termsZone string
)

func init() {
	rootCmd.AddCommand(termsCmd)

	// Flags
	termsCmd.Flags().StringVar(&termsAt, "at", "", "조회 시각 (기본: 현재)")
	termsCmd.Flags().StringVar(&termsZone, "zone", "", "IANA 타임존 (기본: 설정값)")
}

func runTerms(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Solar Terms ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	provider := stdclock.NewProvider()

	var instant contracts.Instant
	if termsAt != "" {
		parsed, _, _, err := resolveChartInputs(cfg, termsAt, termsZone, 0, "")
		if err != nil {
			return err
		}
		instant = parsed
	} else {
		zone := termsZone
		if zone == "" {
			zone = cfg.Chart.Zone
		}
		now, err := provider.Now(zone)
		if err != nil {
			return fmt.Errorf("load zone %q: %w", zone, err)
		}
		instant = now
	}

	info, err := astro.NewReporter(provider, log).Analyze(instant)
	if err != nil {
		return fmt.Errorf("analyze solar terms: %w", err)
	}

	fmt.Printf("\n  조회 시각: %s\n", instant.ToISO())
	fmt.Printf("  태양 황경: %.4f°\n\n", info.SunLongitudeDeg)
	printTermEvent("현재 절기", info.Current)
	printTermEvent("다음 절기", info.Next)
	printTermEvent("직전 절  ", info.PrevJie)
	printTermEvent("다음 절  ", info.NextJie)

	return nil
}

func printTermEvent(label string, ev contracts.SolarTermEvent) {
	fmt.Printf("  %s: %s(%s, %.0f°)  %s  (%+d일)\n",
		label, ev.Term.Name, ev.Term.Hanja, ev.Term.LongitudeDeg, ev.InstantLocal, ev.DayOffset)
}
