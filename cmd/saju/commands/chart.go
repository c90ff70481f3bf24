package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/lunar"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "사주 명식 계산",
	Long: `출생 시각으로부터 사주 네 기둥을 계산합니다.

이 명령어는:
- 입춘 기준 연주, 황경 구간 기준 월주 계산
- 일 경계 프리셋 적용 후 일주/시주 계산
- 음력 날짜 병기

Example:
  go run ./cmd/saju chart --birth 2000-01-01T18:00
  go run ./cmd/saju chart --birth 1985-05-15T00:30 --preset traditional
  go run ./cmd/saju chart --birth 2000-01-01T18:00 --longitude 126.9 --zone Asia/Seoul`,
	RunE: runChart,
}

var (
	chartBirth     string
	chartZone      string
	chartLongitude float64
	chartPreset    string
)

func init() {
	rootCmd.AddCommand(chartCmd)

	// Flags
	chartCmd.Flags().StringVar(&chartBirth, "birth", "", "출생 시각 (예: 2000-01-01T18:00)")
	chartCmd.Flags().StringVar(&chartZone, "zone", "", "IANA 타임존 (기본: 설정값)")
	chartCmd.Flags().Float64Var(&chartLongitude, "longitude", 0, "출생지 경도 (기본: 설정값)")
	chartCmd.Flags().StringVar(&chartPreset, "preset", "", "계산 프리셋 standard|traditional (기본: 설정값)")
	chartCmd.MarkFlagRequired("birth")
}

func runChart(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Saju Chart ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	instant, preset, longitude, err := resolveChartInputs(cfg, chartBirth, chartZone, chartLongitude, chartPreset)
	if err != nil {
		return err
	}

	composer := pillars.NewComposer(stdclock.NewProvider(), lunar.NewConverter(), log)
	fp, err := composer.Compose(instant, pillars.Request{
		LongitudeDeg: longitude,
		Preset:       preset,
	})
	if err != nil {
		return fmt.Errorf("compose chart: %w", err)
	}

	printFourPillars(fp)
	return nil
}

// resolveChartInputs merges flags with config defaults
func resolveChartInputs(cfg *config.Config, birth, zone string, longitude float64, presetName string) (contracts.Instant, pillars.Preset, float64, error) {
	if zone == "" {
		zone = cfg.Chart.Zone
	}
	if presetName == "" {
		presetName = cfg.Chart.Preset
	}
	if longitude == 0 {
		longitude = cfg.Chart.LongitudeDeg
	}

	preset, err := pillars.PresetByName(presetName)
	if err != nil {
		return nil, pillars.Preset{}, 0, err
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, pillars.Preset{}, 0, fmt.Errorf("load zone %q: %w", zone, err)
	}

	var parsed time.Time
	var lastErr error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		parsed, lastErr = time.ParseInLocation(layout, birth, loc)
		if lastErr == nil {
			return stdclock.FromTime(parsed), preset, longitude, nil
		}
	}
	return nil, pillars.Preset{}, 0, fmt.Errorf("parse birth %q: %w", birth, lastErr)
}

func printFourPillars(fp *contracts.FourPillars) {
	fmt.Println()
	fmt.Printf("  년주  월주  일주  시주\n")
	fmt.Printf("  %s  %s  %s  %s\n", fp.Year, fp.Month, fp.Day, fp.Hour)
	fmt.Println()
	fmt.Printf("  절기 연도: %d년 (입춘 기준)\n", fp.SolarYearUsed)
	fmt.Printf("  태양 황경: %.4f°\n", fp.SunLongitudeDeg)
	fmt.Printf("  일주 날짜: %s (%s 프리셋)\n", fp.EffectiveDayDate, fp.BoundaryPreset)
	if fp.Lunar != nil {
		leap := ""
		if fp.Lunar.IsLeapMonth {
			leap = " (윤달)"
		}
		fmt.Printf("  음력: %d년 %d월 %d일%s\n", fp.Lunar.LunarYear, fp.Lunar.LunarMonth, fp.Lunar.LunarDay, leap)
	}
}
