package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/saju/internal/analysis"
	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/lunar"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [년주 월주 일주 시주]",
	Short: "사주 분석",
	Long: `사주 네 기둥을 분석합니다.

네 기둥을 직접 넘기거나 --birth로 출생 시각을 넘기면
명식을 먼저 계산한 뒤 분석합니다.

분석 항목:
- 십신 (일간 기준 분류)
- 신강약 (9단계)
- 용신 (억부/종격 + 조후 힌트)
- 합충형파해
- 신살

Example:
  go run ./cmd/saju analyze 己卯 丙子 戊午 辛酉
  go run ./cmd/saju analyze --birth 2000-01-01T18:00`,
	RunE: runAnalyze,
}

var (
	analyzeBirth  string
	analyzeZone   string
	analyzePreset string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().StringVar(&analyzeBirth, "birth", "", "출생 시각 (기둥 대신 사용)")
	analyzeCmd.Flags().StringVar(&analyzeZone, "zone", "", "IANA 타임존 (기본: 설정값)")
	analyzeCmd.Flags().StringVar(&analyzePreset, "preset", "", "계산 프리셋 (기본: 설정값)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Saju Analysis ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	chart, err := resolveChart(cfg, log, args)
	if err != nil {
		return err
	}

	fmt.Printf("\n  명식: %s %s %s %s\n", chart.Year, chart.Month, chart.Day, chart.Hour)

	// 십신
	tenGods, err := analysis.NewTenGodsCalculator(log).Calculate(chart)
	if err != nil {
		return fmt.Errorf("analyze ten gods: %w", err)
	}
	fmt.Printf("\n[십신] 일간 %s\n", tenGods.DayMaster)
	for i := 0; i < 4; i++ {
		fmt.Printf("  %s: %s(%s) / %s(%s)\n",
			contracts.PillarPosition(i),
			tenGods.Stems[i].Stem, tenGods.Stems[i].God,
			tenGods.Branches[i].Branch, tenGods.Branches[i].God)
	}

	// 신강약
	strength, err := analysis.NewStrengthCalculator(log).Calculate(chart)
	if err != nil {
		return fmt.Errorf("analyze strength: %w", err)
	}
	fmt.Printf("\n[신강약] %s (%.1f점)\n", strength.Level, strength.Score)
	fmt.Printf("  득령 %.2f / 통근 %.2f / 투간 %.2f / 인비 천간 %d / 도움 %d / 설기 %d\n",
		strength.Factors.DeukRyeong, strength.Factors.TongGeun, strength.Factors.TransparentBonus,
		strength.Factors.HelperStemCount, strength.Factors.HelpCount, strength.Factors.WeakenCount)

	// 용신
	yongshen, err := analysis.NewYongshenSelector(log).Calculate(chart)
	if err != nil {
		return fmt.Errorf("analyze yongshen: %w", err)
	}
	fmt.Printf("\n[용신] %s법: %s(주) / %s(보조)\n", yongshen.Method, yongshen.Primary, yongshen.Secondary)
	if yongshen.FollowedElement != nil {
		fmt.Printf("  종격: %s을(를) 따름\n", *yongshen.FollowedElement)
	}
	if yongshen.JohuAdjustment != nil {
		fmt.Printf("  조후 힌트: %s(주) / %s(보조)\n", yongshen.JohuAdjustment.Primary, yongshen.JohuAdjustment.Secondary)
	}

	// 합충형파해
	relations, err := analysis.NewRelationsAnalyzer(log).Calculate(chart)
	if err != nil {
		return fmt.Errorf("analyze relations: %w", err)
	}
	fmt.Printf("\n[합충형파해] %d건\n", len(relations.Relations))
	for _, rel := range relations.Relations {
		line := fmt.Sprintf("  %s: %s", rel.Type, strings.Join(rel.Symbols, ""))
		if rel.ResultElement != nil {
			line += fmt.Sprintf(" → %s (%s)", rel.ResultElement, rel.Status)
		}
		fmt.Println(line)
	}

	// 신살
	sinsal, err := analysis.NewSinsalMatcher(log).Calculate(chart)
	if err != nil {
		return fmt.Errorf("analyze sinsal: %w", err)
	}
	fmt.Printf("\n[신살] %d건\n", len(sinsal.Matches))
	for _, m := range sinsal.Matches {
		fmt.Printf("  %s: %s %s (기준 %s)\n", m.Kind, m.Position, m.Target, m.Base)
	}

	return nil
}

// resolveChart builds the chart from positional pillars or --birth
func resolveChart(cfg *config.Config, log *logger.Logger, args []string) (contracts.Chart, error) {
	if analyzeBirth != "" {
		instant, preset, longitude, err := resolveChartInputs(cfg, analyzeBirth, analyzeZone, 0, analyzePreset)
		if err != nil {
			return contracts.Chart{}, err
		}

		composer := pillars.NewComposer(stdclock.NewProvider(), lunar.NewConverter(), log)
		fp, err := composer.Compose(instant, pillars.Request{
			LongitudeDeg: longitude,
			Preset:       preset,
		})
		if err != nil {
			return contracts.Chart{}, fmt.Errorf("compose chart: %w", err)
		}
		return fp.Chart(), nil
	}

	if len(args) != 4 {
		return contracts.Chart{}, fmt.Errorf("네 기둥(년 월 일 시)을 넘기거나 --birth를 사용하세요")
	}

	chart := contracts.Chart{Year: args[0], Month: args[1], Day: args[2], Hour: args[3]}
	if _, err := chart.Pillars(); err != nil {
		return contracts.Chart{}, fmt.Errorf("invalid pillars: %w", err)
	}
	return chart, nil
}
