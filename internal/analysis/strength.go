package analysis

import (
	"fmt"
	"math"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// season is the 6-way seasonal category of a month branch. 토 월은
// 습토(丑辰)와 건토(未戌)로 갈라진다.
type season int

const (
	seasonSpring season = iota // 寅卯
	seasonSummer               // 巳午
	seasonAutumn               // 申酉
	seasonWinter               // 亥子
	seasonWetEarth             // 丑辰
	seasonDryEarth             // 未戌
)

// seasonOf maps a month branch to its seasonal category
var seasonOf = [12]season{
	ganji.Ja:   seasonWinter,
	ganji.Chuk: seasonWetEarth,
	ganji.In:   seasonSpring,
	ganji.Myo:  seasonSpring,
	ganji.Jin:  seasonWetEarth,
	ganji.Sa:   seasonSummer,
	ganji.O:    seasonSummer,
	ganji.Mi:   seasonDryEarth,
	ganji.Sinb: seasonAutumn,
	ganji.Yu:   seasonAutumn,
	ganji.Sul:  seasonDryEarth,
	ganji.Hae:  seasonWinter,
}

// seasonalMultiplier is the 득령 table: day-master element × season →
// [0,1] 배수. 행 순서는 목화토금수.
var seasonalMultiplier = [5][6]float64{
	ganji.Wood:  {1.0, 0.4, 0.2, 0.7, 0.5, 0.3},
	ganji.Fire:  {0.7, 1.0, 0.3, 0.2, 0.3, 0.5},
	ganji.Earth: {0.3, 0.7, 0.5, 0.3, 0.8, 1.0},
	ganji.Metal: {0.2, 0.3, 1.0, 0.5, 0.7, 0.5},
	ganji.Water: {0.5, 0.2, 0.7, 1.0, 0.5, 0.3},
}

// Score weights. 득지/득세는 반환만 하고 점수에는 넣지 않는다.
const (
	weightDeukRyeong  = 35.0
	weightTongGeun    = 20.0
	weightTransparent = 15.0
	weightHelperStem  = 8.0
	weightHelp        = 5.0
	weightWeaken      = 6.0
)

// StrengthCalculator scores the day master's strength
// ⭐ SSOT: 신강약 판정은 여기서만
type StrengthCalculator struct {
	logger *logger.Logger
}

// NewStrengthCalculator creates a new strength calculator
func NewStrengthCalculator(log *logger.Logger) *StrengthCalculator {
	return &StrengthCalculator{logger: log.Component("analysis")}
}

// Calculate scores the chart's day master and assigns the 9-way band
func (c *StrengthCalculator) Calculate(chart contracts.Chart) (*contracts.StrengthResult, error) {
	pillars, err := chart.Pillars()
	if err != nil {
		return nil, fmt.Errorf("strength: %w", err)
	}

	dayMaster := pillars[contracts.PositionDay].Stem
	dmElement := dayMaster.Element()
	monthBranch := pillars[contracts.PositionMonth].Branch

	// (a) 득령: 월지 계절 배수
	deukRyeong := seasonalMultiplier[dmElement][seasonOf[monthBranch]]

	// (b) 통근: 전체 지지의 지장간 뿌리 합
	tongGeun := 0.0
	deukSe := 0
	for _, p := range pillars {
		rooted := false
		for _, h := range p.Branch.HiddenStems() {
			switch h.Stem.Element() {
			case dmElement:
				w := 1.0
				if h.Stem.Polarity() != dayMaster.Polarity() {
					w = 0.7
				}
				tongGeun += h.Weight * w
				rooted = true
			case dmElement.GeneratedBy():
				tongGeun += h.Weight * 0.5
				rooted = true
			}
		}
		if rooted {
			deukSe++
		}
	}

	// 득지: 일지에 뿌리가 있는가
	deukJi := false
	for _, h := range pillars[contracts.PositionDay].Branch.HiddenStems() {
		if e := h.Stem.Element(); e == dmElement || e == dmElement.GeneratedBy() {
			deukJi = true
			break
		}
	}

	// (c) 투간 보너스: 월지 지장간이 천간에 투출했고 인비로 분류될 때
	transparent := 0.0
	for _, h := range monthBranch.HiddenStems() {
		if !ClassifyStem(dayMaster, h.Stem).IsHelpful() {
			continue
		}
		for _, p := range pillars {
			if p.Stem == h.Stem {
				transparent += h.Weight * 0.3
				break
			}
		}
	}

	// (d) 돕는/설기 글자 수: 일간 제외 천간 3 + 지지 본기 4
	helperStemCount := 0
	helpCount := 0
	weakenCount := 0
	for i, p := range pillars {
		if contracts.PillarPosition(i) != contracts.PositionDay {
			if ClassifyStem(dayMaster, p.Stem).IsHelpful() {
				helperStemCount++
				helpCount++
			} else {
				weakenCount++
			}
		}
		if ClassifyStem(dayMaster, p.Branch.PrimaryStem()).IsHelpful() {
			helpCount++
		} else {
			weakenCount++
		}
	}

	score := weightDeukRyeong*deukRyeong +
		weightTongGeun*tongGeun +
		weightTransparent*transparent +
		weightHelperStem*float64(helperStemCount) +
		weightHelp*float64(helpCount) -
		weightWeaken*float64(weakenCount)
	score = math.Round(score*10) / 10

	result := &contracts.StrengthResult{
		DayMaster: dayMaster,
		Score:     score,
		Level:     levelForScore(score),
		Factors: contracts.StrengthFactors{
			DeukRyeong:       deukRyeong,
			TongGeun:         tongGeun,
			TransparentBonus: transparent,
			HelperStemCount:  helperStemCount,
			HelpCount:        helpCount,
			WeakenCount:      weakenCount,
			DeukJi:           deukJi,
			DeukSe:           deukSe,
		},
	}

	c.logger.WithFields(map[string]interface{}{
		"day_master": dayMaster.String(),
		"score":      score,
		"level":      result.Level.String(),
	}).Debug("Strength evaluated")

	return result, nil
}

// levelForScore maps a score to its band (inclusive upper bounds)
func levelForScore(score float64) contracts.StrengthLevel {
	switch {
	case score <= 10:
		return contracts.GeukYak
	case score <= 20:
		return contracts.TaeYak
	case score <= 30:
		return contracts.SinYak
	case score <= 38:
		return contracts.JunghwaSinYak
	case score <= 45:
		return contracts.Junghwa
	case score <= 55:
		return contracts.JunghwaSinGang
	case score <= 70:
		return contracts.SinGang
	case score <= 85:
		return contracts.TaeGang
	default:
		return contracts.GeukWang
	}
}
