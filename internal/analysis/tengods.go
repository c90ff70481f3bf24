// Package analysis implements the interpretive engines on top of a
// composed chart: 십신, 신강약, 용신, 합충형파해, 신살.
package analysis

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// TenGodsCalculator classifies each chart letter against the day master
// ⭐ SSOT: 십신 판정은 여기서만
type TenGodsCalculator struct {
	logger *logger.Logger
}

// NewTenGodsCalculator creates a new ten gods calculator
func NewTenGodsCalculator(log *logger.Logger) *TenGodsCalculator {
	return &TenGodsCalculator{logger: log.Component("analysis")}
}

// ClassifyStem returns the ten god of a stem relative to the day master.
// 오행 관계 다섯 갈래 × 음양 동이(同異)로 열 가지가 결정된다.
func ClassifyStem(dayMaster, target ganji.Stem) contracts.TenGod {
	dm := dayMaster.Element()
	te := target.Element()
	samePolarity := dayMaster.Polarity() == target.Polarity()

	switch {
	case dm == te:
		if samePolarity {
			return contracts.BiGyeon
		}
		return contracts.GeopJae
	case dm.Generates() == te:
		if samePolarity {
			return contracts.SikSin
		}
		return contracts.SangGwan
	case dm.Controls() == te:
		if samePolarity {
			return contracts.PyeonJae
		}
		return contracts.JeongJae
	case te.Controls() == dm:
		if samePolarity {
			return contracts.PyeonGwan
		}
		return contracts.JeongGwan
	default: // te.Generates() == dm
		if samePolarity {
			return contracts.PyeonIn
		}
		return contracts.JeongIn
	}
}

// Calculate classifies all eight letters of a chart. The day stem
// itself is reported as 비견 (자기 자신과 같은 오행, 같은 음양).
func (c *TenGodsCalculator) Calculate(chart contracts.Chart) (*contracts.TenGodsResult, error) {
	pillars, err := chart.Pillars()
	if err != nil {
		return nil, fmt.Errorf("ten gods: %w", err)
	}

	dayMaster := pillars[contracts.PositionDay].Stem

	result := &contracts.TenGodsResult{DayMaster: dayMaster}
	for i, p := range pillars {
		pos := contracts.PillarPosition(i)

		result.Stems[i] = contracts.StemTenGod{
			Position: pos,
			Stem:     p.Stem,
			God:      ClassifyStem(dayMaster, p.Stem),
		}

		// 지지는 본기 기준
		primary := p.Branch.PrimaryStem()
		result.Branches[i] = contracts.BranchTenGod{
			Position:    pos,
			Branch:      p.Branch,
			PrimaryStem: primary,
			God:         ClassifyStem(dayMaster, primary),
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"day_master": dayMaster.String(),
	}).Debug("Ten gods classified")

	return result, nil
}
