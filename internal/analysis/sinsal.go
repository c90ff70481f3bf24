package analysis

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// trineGroupOf maps a branch to its 삼합 group:
// 0=申子辰, 1=寅午戌, 2=巳酉丑, 3=亥卯未
var trineGroupOf = [12]int{
	ganji.Ja:   0,
	ganji.Chuk: 2,
	ganji.In:   1,
	ganji.Myo:  3,
	ganji.Jin:  0,
	ganji.Sa:   2,
	ganji.O:    1,
	ganji.Mi:   3,
	ganji.Sinb: 0,
	ganji.Yu:   2,
	ganji.Sul:  1,
	ganji.Hae:  3,
}

// trineSinsalTargets maps the 12 trine-based markers to their target
// branch per group (group order: 申子辰, 寅午戌, 巳酉丑, 亥卯未).
// 기준은 년지와 일지 둘 다.
var trineSinsalTargets = map[contracts.SinsalKind][4]ganji.Branch{
	contracts.Jisal:     {ganji.Sinb, ganji.In, ganji.Sa, ganji.Hae},
	contracts.Geopsal:   {ganji.Sa, ganji.Hae, ganji.In, ganji.Sinb},
	contracts.Jaesal:    {ganji.O, ganji.Ja, ganji.Myo, ganji.Yu},
	contracts.Cheonsal:  {ganji.Mi, ganji.Chuk, ganji.Jin, ganji.Sul},
	contracts.Wolsal:    {ganji.Sul, ganji.Jin, ganji.Mi, ganji.Chuk},
	contracts.Mangsin:   {ganji.Hae, ganji.Sa, ganji.Sinb, ganji.In},
	contracts.Jangseong: {ganji.Ja, ganji.O, ganji.Yu, ganji.Myo},
	contracts.Banan:     {ganji.Chuk, ganji.Mi, ganji.Sul, ganji.Jin},
	contracts.Yeokma:    {ganji.In, ganji.Sinb, ganji.Hae, ganji.Sa},
	contracts.Yukhae:    {ganji.Myo, ganji.Yu, ganji.Ja, ganji.O},
	contracts.Hwagae:    {ganji.Jin, ganji.Sul, ganji.Chuk, ganji.Mi},
	contracts.Dohwa:     {ganji.Yu, ganji.Myo, ganji.O, ganji.Ja},
}

// trineSinsalOrder fixes the emission order of the trine-based markers
var trineSinsalOrder = [12]contracts.SinsalKind{
	contracts.Jisal, contracts.Geopsal, contracts.Jaesal, contracts.Cheonsal,
	contracts.Wolsal, contracts.Mangsin, contracts.Jangseong, contracts.Banan,
	contracts.Yeokma, contracts.Yukhae, contracts.Hwagae, contracts.Dohwa,
}

// cheondeokTargets is the 천덕귀인 table: 월지 → 목표 지지.
// 천간 목표는 건록지로 환원한 값.
var cheondeokTargets = [12]ganji.Branch{
	ganji.Ja:   ganji.Sa,
	ganji.Chuk: ganji.Sinb,
	ganji.In:   ganji.O,
	ganji.Myo:  ganji.Sinb,
	ganji.Jin:  ganji.Hae,
	ganji.Sa:   ganji.Yu,
	ganji.O:    ganji.Hae,
	ganji.Mi:   ganji.In,
	ganji.Sinb: ganji.Ja,
	ganji.Yu:   ganji.In,
	ganji.Sul:  ganji.Sa,
	ganji.Hae:  ganji.Myo,
}

// woldeokTargets is the 월덕귀인 table: 월지 삼합 그룹 → 목표 지지
// (그룹 천간의 건록지)
var woldeokTargets = [4]ganji.Branch{
	ganji.Hae,  // 申子辰 → 壬 → 亥
	ganji.Sa,   // 寅午戌 → 丙 → 巳
	ganji.Sinb, // 巳酉丑 → 庚 → 申
	ganji.In,   // 亥卯未 → 甲 → 寅
}

// cheoneulTargets is the 천을귀인 table: 기준 천간(일간/년간) → 목표 지지들
var cheoneulTargets = [10][]ganji.Branch{
	ganji.Gap:    {ganji.Chuk, ganji.Mi},
	ganji.Eul:    {ganji.Ja, ganji.Sinb},
	ganji.Byeong: {ganji.Hae, ganji.Yu},
	ganji.Jeong:  {ganji.Hae, ganji.Yu},
	ganji.Mu:     {ganji.Chuk, ganji.Mi},
	ganji.Gi:     {ganji.Ja, ganji.Sinb},
	ganji.Gyeong: {ganji.Chuk, ganji.Mi},
	ganji.Sin:    {ganji.In, ganji.O},
	ganji.Im:     {ganji.Sa, ganji.Myo},
	ganji.Gye:    {ganji.Sa, ganji.Myo},
}

// yanginTargets is the 양인살 table: 양간 일간 → 목표 지지 (음간은 없음)
var yanginTargets = map[ganji.Stem]ganji.Branch{
	ganji.Gap:    ganji.Myo,
	ganji.Byeong: ganji.O,
	ganji.Mu:     ganji.O,
	ganji.Gyeong: ganji.Yu,
	ganji.Im:     ganji.Ja,
}

// SinsalMatcher detects the 16 supported markers over a chart
// ⭐ SSOT: 신살 판정은 여기서만 — (신살, 위치) 쌍은 중복 없이 반환
type SinsalMatcher struct {
	logger *logger.Logger
}

// NewSinsalMatcher creates a new sinsal matcher
func NewSinsalMatcher(log *logger.Logger) *SinsalMatcher {
	return &SinsalMatcher{logger: log.Component("analysis")}
}

// Calculate collects every marker hit and deduplicates by
// (kind, position) before returning.
func (m *SinsalMatcher) Calculate(chart contracts.Chart) (*contracts.SinsalResult, error) {
	pillars, err := chart.Pillars()
	if err != nil {
		return nil, fmt.Errorf("sinsal: %w", err)
	}

	yearBranch := pillars[contracts.PositionYear].Branch
	monthBranch := pillars[contracts.PositionMonth].Branch
	dayBranch := pillars[contracts.PositionDay].Branch
	yearStem := pillars[contracts.PositionYear].Stem
	dayStem := pillars[contracts.PositionDay].Stem

	var matches []contracts.SinsalMatch

	// 삼합 그룹 기반 12신살: 년지 기준 + 일지 기준
	for _, kind := range trineSinsalOrder {
		targets := trineSinsalTargets[kind]
		matches = append(matches,
			branchHits(kind, "년지 "+yearBranch.String(), targets[trineGroupOf[yearBranch]], pillars)...)
		matches = append(matches,
			branchHits(kind, "일지 "+dayBranch.String(), targets[trineGroupOf[dayBranch]], pillars)...)
	}

	// 천덕귀인/월덕귀인: 월지 기준
	matches = append(matches,
		branchHits(contracts.Cheondeok, "월지 "+monthBranch.String(), cheondeokTargets[monthBranch], pillars)...)
	matches = append(matches,
		branchHits(contracts.Woldeok, "월지 "+monthBranch.String(), woldeokTargets[trineGroupOf[monthBranch]], pillars)...)

	// 천을귀인: 일간 기준 + 년간 기준
	for _, target := range cheoneulTargets[dayStem] {
		matches = append(matches,
			branchHits(contracts.Cheoneul, "일간 "+dayStem.String(), target, pillars)...)
	}
	for _, target := range cheoneulTargets[yearStem] {
		matches = append(matches,
			branchHits(contracts.Cheoneul, "년간 "+yearStem.String(), target, pillars)...)
	}

	// 양인살: 양간 일간만
	if target, ok := yanginTargets[dayStem]; ok {
		matches = append(matches,
			branchHits(contracts.Yangin, "일간 "+dayStem.String(), target, pillars)...)
	}

	result := &contracts.SinsalResult{Matches: dedupeMatches(matches)}

	m.logger.WithFields(map[string]interface{}{
		"count": len(result.Matches),
	}).Debug("Sinsal matched")

	return result, nil
}

// branchHits returns one match per chart branch equal to the target
func branchHits(kind contracts.SinsalKind, base string, target ganji.Branch, pillars [4]ganji.Pillar) []contracts.SinsalMatch {
	var hits []contracts.SinsalMatch
	for i, p := range pillars {
		if p.Branch == target {
			hits = append(hits, contracts.SinsalMatch{
				Kind:     kind,
				Position: contracts.PillarPosition(i),
				Base:     base,
				Target:   target,
			})
		}
	}
	return hits
}

// dedupeMatches drops repeat (kind, position) pairs, keeping the first
func dedupeMatches(matches []contracts.SinsalMatch) []contracts.SinsalMatch {
	type key struct {
		kind contracts.SinsalKind
		pos  contracts.PillarPosition
	}

	seen := make(map[key]bool, len(matches))
	out := make([]contracts.SinsalMatch, 0, len(matches))
	for _, m := range matches {
		k := key{m.Kind, m.Position}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}
