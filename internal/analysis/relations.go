package analysis

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// stemComboTable is the 천간합 table: 다섯 쌍은 서로 5칸 떨어진 천간
var stemComboTable = [5]struct {
	a, b   ganji.Stem
	result ganji.Element
}{
	{ganji.Gap, ganji.Gi, ganji.Earth},      // 甲己合土
	{ganji.Eul, ganji.Gyeong, ganji.Metal},  // 乙庚合金
	{ganji.Byeong, ganji.Sin, ganji.Water},  // 丙辛合水
	{ganji.Jeong, ganji.Im, ganji.Wood},     // 丁壬合木
	{ganji.Mu, ganji.Gye, ganji.Fire},       // 戊癸合火
}

// sixComboTable is the 육합 table
var sixComboTable = [6]struct {
	a, b   ganji.Branch
	result ganji.Element
}{
	{ganji.Ja, ganji.Chuk, ganji.Earth},  // 子丑合土
	{ganji.In, ganji.Hae, ganji.Wood},    // 寅亥合木
	{ganji.Myo, ganji.Sul, ganji.Fire},   // 卯戌合火
	{ganji.Jin, ganji.Yu, ganji.Metal},   // 辰酉合金
	{ganji.Sa, ganji.Sinb, ganji.Water},  // 巳申合水
	{ganji.O, ganji.Mi, ganji.Fire},      // 午未合火
}

// branchPairTable is one 6-entry pair table (충/해/파)
type branchPairTable [6][2]ganji.Branch

var clashTable = branchPairTable{
	{ganji.Ja, ganji.O}, {ganji.Chuk, ganji.Mi}, {ganji.In, ganji.Sinb},
	{ganji.Myo, ganji.Yu}, {ganji.Jin, ganji.Sul}, {ganji.Sa, ganji.Hae},
}

var harmTable = branchPairTable{
	{ganji.Ja, ganji.Mi}, {ganji.Chuk, ganji.O}, {ganji.In, ganji.Sa},
	{ganji.Myo, ganji.Jin}, {ganji.Sinb, ganji.Hae}, {ganji.Yu, ganji.Sul},
}

var destructionTable = branchPairTable{
	{ganji.Ja, ganji.Yu}, {ganji.Chuk, ganji.Jin}, {ganji.In, ganji.Hae},
	{ganji.Myo, ganji.O}, {ganji.Sa, ganji.Sinb}, {ganji.Sul, ganji.Mi},
}

// tripleComboTable is the 삼합 table (세 지지가 모여 하나의 국을 이룸)
var tripleComboTable = [4]struct {
	members [3]ganji.Branch
	result  ganji.Element
}{
	{[3]ganji.Branch{ganji.Sinb, ganji.Ja, ganji.Jin}, ganji.Water}, // 申子辰 水局
	{[3]ganji.Branch{ganji.Hae, ganji.Myo, ganji.Mi}, ganji.Wood},   // 亥卯未 木局
	{[3]ganji.Branch{ganji.In, ganji.O, ganji.Sul}, ganji.Fire},     // 寅午戌 火局
	{[3]ganji.Branch{ganji.Sa, ganji.Yu, ganji.Chuk}, ganji.Metal},  // 巳酉丑 金局
}

// directionalComboTable is the 방합 table (같은 계절 세 지지)
var directionalComboTable = [4]struct {
	members [3]ganji.Branch
	result  ganji.Element
}{
	{[3]ganji.Branch{ganji.In, ganji.Myo, ganji.Jin}, ganji.Wood},    // 寅卯辰 동방
	{[3]ganji.Branch{ganji.Sa, ganji.O, ganji.Mi}, ganji.Fire},       // 巳午未 남방
	{[3]ganji.Branch{ganji.Sinb, ganji.Yu, ganji.Sul}, ganji.Metal},  // 申酉戌 서방
	{[3]ganji.Branch{ganji.Hae, ganji.Ja, ganji.Chuk}, ganji.Water},  // 亥子丑 북방
}

// punishmentTriples are the 삼형 sets (2개 이상이면 성립)
var punishmentTriples = [2][3]ganji.Branch{
	{ganji.In, ganji.Sa, ganji.Sinb}, // 寅巳申 무은지형
	{ganji.Chuk, ganji.Sul, ganji.Mi}, // 丑戌未 지세지형
}

// punishmentPairs are the 상형 pairs
var punishmentPairs = [1][2]ganji.Branch{
	{ganji.Ja, ganji.Myo}, // 子卯 무례지형
}

// selfPunishments are the 자형 branches (같은 글자 2개 이상)
var selfPunishments = [4]ganji.Branch{ganji.Jin, ganji.O, ganji.Yu, ganji.Hae}

// seasonElementOf maps a month branch to the element its season supports
var seasonElementOf = [12]ganji.Element{
	ganji.Ja:   ganji.Water,
	ganji.Chuk: ganji.Water,
	ganji.In:   ganji.Wood,
	ganji.Myo:  ganji.Wood,
	ganji.Jin:  ganji.Wood,
	ganji.Sa:   ganji.Fire,
	ganji.O:    ganji.Fire,
	ganji.Mi:   ganji.Fire,
	ganji.Sinb: ganji.Metal,
	ganji.Yu:   ganji.Metal,
	ganji.Sul:  ganji.Metal,
	ganji.Hae:  ganji.Water,
}

// RelationsAnalyzer detects 합충형파해 over the four pillar strings
// ⭐ SSOT: 지지/천간 관계 판정은 여기서만
type RelationsAnalyzer struct {
	logger *logger.Logger
}

// NewRelationsAnalyzer creates a new relations analyzer
func NewRelationsAnalyzer(log *logger.Logger) *RelationsAnalyzer {
	return &RelationsAnalyzer{logger: log.Component("analysis")}
}

// Calculate detects every relation in the chart, pair tables first,
// then the 3-branch combinations, then punishments.
func (a *RelationsAnalyzer) Calculate(chart contracts.Chart) (*contracts.RelationsResult, error) {
	pillars, err := chart.Pillars()
	if err != nil {
		return nil, fmt.Errorf("relations: %w", err)
	}

	monthBranch := pillars[contracts.PositionMonth].Branch
	result := &contracts.RelationsResult{}

	a.detectStemCombinations(pillars, result)
	a.detectBranchPairs(pillars, monthBranch, result)
	a.detectTripleSets(pillars, monthBranch, result)
	a.detectPunishments(pillars, result)

	a.logger.WithFields(map[string]interface{}{
		"count": len(result.Relations),
	}).Debug("Relations analyzed")

	return result, nil
}

// detectStemCombinations tests every unordered stem pair against 천간합
func (a *RelationsAnalyzer) detectStemCombinations(pillars [4]ganji.Pillar, out *contracts.RelationsResult) {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			s1, s2 := pillars[i].Stem, pillars[j].Stem
			for _, combo := range stemComboTable {
				if !matchesPairStem(s1, s2, combo.a, combo.b) {
					continue
				}
				elem := combo.result
				status, reason := transformStatusFor(elem, pillars, monthBranchOf(pillars), true)
				out.Relations = append(out.Relations, contracts.Relation{
					Type:          contracts.StemCombination,
					Symbols:       []string{s1.String(), s2.String()},
					Positions:     []contracts.PillarPosition{contracts.PillarPosition(i), contracts.PillarPosition(j)},
					ResultElement: &elem,
					IsComplete:    true,
					Status:        status,
					Reason:        reason,
				})
			}
		}
	}
}

// detectBranchPairs tests every unordered branch pair against the
// 육합/충/해/파 tables
func (a *RelationsAnalyzer) detectBranchPairs(pillars [4]ganji.Pillar, monthBranch ganji.Branch, out *contracts.RelationsResult) {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			b1, b2 := pillars[i].Branch, pillars[j].Branch
			positions := []contracts.PillarPosition{contracts.PillarPosition(i), contracts.PillarPosition(j)}
			symbols := []string{b1.String(), b2.String()}

			for _, combo := range sixComboTable {
				if matchesPairBranch(b1, b2, combo.a, combo.b) {
					elem := combo.result
					status, reason := transformStatusFor(elem, pillars, monthBranch, false)
					out.Relations = append(out.Relations, contracts.Relation{
						Type:          contracts.SixCombination,
						Symbols:       symbols,
						Positions:     positions,
						ResultElement: &elem,
						IsComplete:    true,
						Status:        status,
						Reason:        reason,
					})
				}
			}

			for _, entry := range []struct {
				relType contracts.RelationType
				table   branchPairTable
			}{
				{contracts.Clash, clashTable},
				{contracts.Harm, harmTable},
				{contracts.Destruction, destructionTable},
			} {
				for _, pair := range entry.table {
					if matchesPairBranch(b1, b2, pair[0], pair[1]) {
						out.Relations = append(out.Relations, contracts.Relation{
							Type:      entry.relType,
							Symbols:   symbols,
							Positions: positions,
						})
					}
				}
			}
		}
	}
}

// detectTripleSets tests the 삼합/방합 3-branch sets (2개 이상 성립)
func (a *RelationsAnalyzer) detectTripleSets(pillars [4]ganji.Pillar, monthBranch ganji.Branch, out *contracts.RelationsResult) {
	type tripleSet struct {
		relType contracts.RelationType
		members [3]ganji.Branch
		result  ganji.Element
	}

	var sets []tripleSet
	for _, t := range tripleComboTable {
		sets = append(sets, tripleSet{contracts.TripleCombination, t.members, t.result})
	}
	for _, d := range directionalComboTable {
		sets = append(sets, tripleSet{contracts.DirectionalCombination, d.members, d.result})
	}

	for _, set := range sets {
		var symbols []string
		var positions []contracts.PillarPosition
		present := 0
		for _, member := range set.members {
			found := false
			for i, p := range pillars {
				if p.Branch == member {
					if !found {
						symbols = append(symbols, member.String())
						present++
						found = true
					}
					positions = append(positions, contracts.PillarPosition(i))
				}
			}
		}
		if present < 2 {
			continue
		}

		elem := set.result
		rel := contracts.Relation{
			Type:          set.relType,
			Symbols:       symbols,
			Positions:     positions,
			ResultElement: &elem,
			IsComplete:    present == 3,
		}
		if !rel.IsComplete {
			rel.Status = contracts.StatusHalfCombined
			rel.Reason = "세 글자 중 둘만 모여 반합"
		} else {
			rel.Status, rel.Reason = transformStatusFor(elem, pillars, monthBranch, false)
		}
		out.Relations = append(out.Relations, rel)
	}
}

// detectPunishments tests the three 형 shapes: 삼형, 상형, 자형
func (a *RelationsAnalyzer) detectPunishments(pillars [4]ganji.Pillar, out *contracts.RelationsResult) {
	for _, set := range punishmentTriples {
		var symbols []string
		var positions []contracts.PillarPosition
		present := 0
		for _, member := range set {
			found := false
			for i, p := range pillars {
				if p.Branch == member {
					if !found {
						symbols = append(symbols, member.String())
						present++
						found = true
					}
					positions = append(positions, contracts.PillarPosition(i))
				}
			}
		}
		if present >= 2 {
			out.Relations = append(out.Relations, contracts.Relation{
				Type:      contracts.Punishment,
				Symbols:   symbols,
				Positions: positions,
			})
		}
	}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			b1, b2 := pillars[i].Branch, pillars[j].Branch
			for _, pair := range punishmentPairs {
				if matchesPairBranch(b1, b2, pair[0], pair[1]) {
					out.Relations = append(out.Relations, contracts.Relation{
						Type:      contracts.Punishment,
						Symbols:   []string{b1.String(), b2.String()},
						Positions: []contracts.PillarPosition{contracts.PillarPosition(i), contracts.PillarPosition(j)},
					})
				}
			}
		}
	}

	for _, self := range selfPunishments {
		var positions []contracts.PillarPosition
		for i, p := range pillars {
			if p.Branch == self {
				positions = append(positions, contracts.PillarPosition(i))
			}
		}
		if len(positions) >= 2 {
			out.Relations = append(out.Relations, contracts.Relation{
				Type:      contracts.Punishment,
				Symbols:   []string{self.String()},
				Positions: positions,
			})
		}
	}
}

// transformStatusFor decides 화/불화 for a complete combination. 월지가
// 결과 오행의 계절이면 화, 아니면 차트 안 결과 오행 개수 2 이상일 때 화.
func transformStatusFor(result ganji.Element, pillars [4]ganji.Pillar, monthBranch ganji.Branch, overStems bool) (contracts.TransformStatus, string) {
	if seasonSupports(monthBranch, result) {
		return contracts.StatusTransformed, fmt.Sprintf("월지 %s의 계절이 %s을(를) 도와 화(化)", monthBranch, result)
	}

	count := 0
	for _, p := range pillars {
		if overStems {
			if p.Stem.Element() == result {
				count++
			}
		} else {
			if p.Branch.Element() == result {
				count++
			}
		}
	}
	if count >= 2 {
		return contracts.StatusTransformed, fmt.Sprintf("%s 오행이 %d자로 세력을 이뤄 화(化)", result, count)
	}

	return contracts.StatusNotTransformed, "합은 맺되 화(化)할 세력이 없음"
}

// seasonSupports reports whether the month branch's season backs an
// element. 토 월(辰戌丑未)은 토도 함께 돕는다.
func seasonSupports(monthBranch ganji.Branch, elem ganji.Element) bool {
	if seasonElementOf[monthBranch] == elem {
		return true
	}
	return elem == ganji.Earth && monthBranch.Element() == ganji.Earth
}

func monthBranchOf(pillars [4]ganji.Pillar) ganji.Branch {
	return pillars[contracts.PositionMonth].Branch
}

func matchesPairStem(x, y, a, b ganji.Stem) bool {
	return (x == a && y == b) || (x == b && y == a)
}

func matchesPairBranch(x, y, a, b ganji.Branch) bool {
	return (x == a && y == b) || (x == b && y == a)
}
