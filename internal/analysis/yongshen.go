package analysis

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// jonggyeokDominantCount is the branch-element count that triggers the
// 종격 override when the day master is 극약
const jonggyeokDominantCount = 3

// fourSeason is the plain 4-way season used by the 조후 table
// (토 월은 각 계절의 끝으로 귀속)
type fourSeason int

const (
	springQ fourSeason = iota
	summerQ
	autumnQ
	winterQ
)

// fourSeasonOf maps a month branch to its plain season
var fourSeasonOf = [12]fourSeason{
	ganji.Ja:   winterQ,
	ganji.Chuk: winterQ,
	ganji.In:   springQ,
	ganji.Myo:  springQ,
	ganji.Jin:  springQ,
	ganji.Sa:   summerQ,
	ganji.O:    summerQ,
	ganji.Mi:   summerQ,
	ganji.Sinb: autumnQ,
	ganji.Yu:   autumnQ,
	ganji.Sul:  autumnQ,
	ganji.Hae:  winterQ,
}

// johuTable is the 조후 pair: (season × day-master element) →
// [주용신, 보조]. 여름은 물, 겨울은 불이 기둥이고 나머지는 일간별로 조정.
var johuTable = [4][5]contracts.ElementPair{
	springQ: {
		ganji.Wood:  {Primary: ganji.Fire, Secondary: ganji.Water},
		ganji.Fire:  {Primary: ganji.Wood, Secondary: ganji.Water},
		ganji.Earth: {Primary: ganji.Fire, Secondary: ganji.Metal},
		ganji.Metal: {Primary: ganji.Fire, Secondary: ganji.Earth},
		ganji.Water: {Primary: ganji.Metal, Secondary: ganji.Fire},
	},
	summerQ: {
		ganji.Wood:  {Primary: ganji.Water, Secondary: ganji.Metal},
		ganji.Fire:  {Primary: ganji.Water, Secondary: ganji.Metal},
		ganji.Earth: {Primary: ganji.Water, Secondary: ganji.Metal},
		ganji.Metal: {Primary: ganji.Water, Secondary: ganji.Earth},
		ganji.Water: {Primary: ganji.Metal, Secondary: ganji.Water},
	},
	autumnQ: {
		ganji.Wood:  {Primary: ganji.Fire, Secondary: ganji.Water},
		ganji.Fire:  {Primary: ganji.Wood, Secondary: ganji.Fire},
		ganji.Earth: {Primary: ganji.Fire, Secondary: ganji.Water},
		ganji.Metal: {Primary: ganji.Fire, Secondary: ganji.Water},
		ganji.Water: {Primary: ganji.Fire, Secondary: ganji.Wood},
	},
	winterQ: {
		ganji.Wood:  {Primary: ganji.Fire, Secondary: ganji.Earth},
		ganji.Fire:  {Primary: ganji.Wood, Secondary: ganji.Fire},
		ganji.Earth: {Primary: ganji.Fire, Secondary: ganji.Wood},
		ganji.Metal: {Primary: ganji.Fire, Secondary: ganji.Earth},
		ganji.Water: {Primary: ganji.Fire, Secondary: ganji.Wood},
	},
}

// YongshenSelector picks the useful elements for a chart
// ⭐ SSOT: 용신 선정은 여기서만 — 억부 기본, 종격 예외, 조후 힌트
type YongshenSelector struct {
	strength *StrengthCalculator
	logger   *logger.Logger
}

// NewYongshenSelector creates a new yongshen selector
func NewYongshenSelector(log *logger.Logger) *YongshenSelector {
	return &YongshenSelector{
		strength: NewStrengthCalculator(log),
		logger:   log.Component("analysis"),
	}
}

// Calculate selects the useful elements from the strength evaluation
func (s *YongshenSelector) Calculate(chart contracts.Chart) (*contracts.YongshenResult, error) {
	strength, err := s.strength.Calculate(chart)
	if err != nil {
		return nil, fmt.Errorf("yongshen: %w", err)
	}

	pillars, err := chart.Pillars()
	if err != nil {
		return nil, fmt.Errorf("yongshen: %w", err)
	}

	dm := strength.DayMaster.Element()

	// 억부: 신강이면 관성(극하는 오행)으로 누르고 식상으로 설기,
	// 신약이면 인성(생하는 오행)으로 돕고 비겁으로 받친다.
	balance := contracts.ElementPair{
		Primary:   dm.GeneratedBy(),
		Secondary: dm,
	}
	if strength.Level.IsStrong() {
		balance = contracts.ElementPair{
			Primary:   dm.ControlledBy(),
			Secondary: dm.Generates(),
		}
	}

	result := &contracts.YongshenResult{
		Method:    contracts.MethodEokbu,
		Primary:   balance.Primary,
		Secondary: balance.Secondary,
		Strength:  *strength,
	}

	// 종격: 극약이면서 지지 오행 하나가 압도하면 그 오행을 따른다
	if strength.Level == contracts.GeukYak {
		if dominant, ok := dominantBranchElement(pillars, dm); ok {
			alt := balance
			result.Method = contracts.MethodJonggyeok
			result.Primary = dominant
			result.Secondary = dominant.Generates()
			result.FollowedElement = &dominant
			result.AlternativeBalance = &alt
		}
	}

	// 조후: 억부와 다를 때만 힌트로 노출
	johu := johuTable[fourSeasonOf[pillars[contracts.PositionMonth].Branch]][dm]
	if johu.Primary != balance.Primary {
		result.JohuAdjustment = &johu
	}

	s.logger.WithFields(map[string]interface{}{
		"method":    string(result.Method),
		"primary":   result.Primary.String(),
		"secondary": result.Secondary.String(),
	}).Debug("Yongshen selected")

	return result, nil
}

// dominantBranchElement finds a non-day-master element appearing at
// least three times among the four branch elements
func dominantBranchElement(pillars [4]ganji.Pillar, dm ganji.Element) (ganji.Element, bool) {
	var counts [5]int
	for _, p := range pillars {
		counts[p.Branch.Element()]++
	}
	for e, n := range counts {
		if ganji.Element(e) != dm && n >= jonggyeokDominantCount {
			return ganji.Element(e), true
		}
	}
	return 0, false
}
