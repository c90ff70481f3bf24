package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

func findMatches(res *contracts.SinsalResult, kind contracts.SinsalKind) []contracts.SinsalMatch {
	var out []contracts.SinsalMatch
	for _, m := range res.Matches {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func TestSinsalReferenceChart(t *testing.T) {
	matcher := NewSinsalMatcher(testLogger())

	// 卯子午酉 — 네 도화지가 모두 모인 차트
	res, err := matcher.Calculate(chartA)
	require.NoError(t, err)

	// 년지 卯(亥卯未) 기준 도화는 子, 일지 午(寅午戌) 기준 도화는 卯
	dohwa := findMatches(res, contracts.Dohwa)
	require.Len(t, dohwa, 2)
	positions := []contracts.PillarPosition{dohwa[0].Position, dohwa[1].Position}
	assert.ElementsMatch(t, []contracts.PillarPosition{contracts.PositionYear, contracts.PositionMonth}, positions)

	// 양간 戊 일간의 양인은 午 — 일지 자리
	yangin := findMatches(res, contracts.Yangin)
	require.Len(t, yangin, 1)
	assert.Equal(t, contracts.PositionDay, yangin[0].Position)
	assert.Equal(t, ganji.O, yangin[0].Target)

	// 년간 己의 천을귀인은 子申 — 월지 子 적중
	cheoneul := findMatches(res, contracts.Cheoneul)
	require.Len(t, cheoneul, 1)
	assert.Equal(t, contracts.PositionMonth, cheoneul[0].Position)

	// 장성살: 년지 기준 卯 자리 + 일지 기준 午 자리
	jangseong := findMatches(res, contracts.Jangseong)
	assert.Len(t, jangseong, 2)
}

func TestSinsalNoDuplicatePairs(t *testing.T) {
	matcher := NewSinsalMatcher(testLogger())

	charts := []contracts.Chart{
		chartA,
		// 년지와 일지가 같은 삼합 그룹 → 기준이 겹쳐 중복 후보가 생긴다
		{Year: "甲子", Month: "丙寅", Day: "戊辰", Hour: "壬子"},
		{Year: "庚申", Month: "辛酉", Day: "甲申", Hour: "庚午"},
	}

	for _, chart := range charts {
		res, err := matcher.Calculate(chart)
		require.NoError(t, err)

		type key struct {
			kind contracts.SinsalKind
			pos  contracts.PillarPosition
		}
		seen := make(map[key]bool)
		for _, m := range res.Matches {
			k := key{m.Kind, m.Position}
			assert.False(t, seen[k], "duplicate %s at %s", m.Kind, m.Position)
			seen[k] = true
		}
	}
}

func TestSinsalSameTrineGroupBases(t *testing.T) {
	matcher := NewSinsalMatcher(testLogger())

	// 년지 子, 일지 辰 — 같은 申子辰 그룹이므로 같은 목표를 가리키고,
	// 중복 제거 후 한 번만 나와야 한다
	res, err := matcher.Calculate(contracts.Chart{Year: "甲子", Month: "丙寅", Day: "戊辰", Hour: "壬子"})
	require.NoError(t, err)

	// 역마(寅)는 월지 한 자리뿐
	yeokma := findMatches(res, contracts.Yeokma)
	require.Len(t, yeokma, 1)
	assert.Equal(t, contracts.PositionMonth, yeokma[0].Position)

	// 화개(辰)는 일지 한 자리뿐
	hwagae := findMatches(res, contracts.Hwagae)
	require.Len(t, hwagae, 1)
	assert.Equal(t, contracts.PositionDay, hwagae[0].Position)

	// 장성(子)은 년지와 시지 두 자리
	assert.Len(t, findMatches(res, contracts.Jangseong), 2)
}

func TestSinsalVirtueMarkers(t *testing.T) {
	matcher := NewSinsalMatcher(testLogger())

	// 寅월의 천덕은 午, 월덕(寅午戌 → 丙)은 巳
	res, err := matcher.Calculate(contracts.Chart{Year: "丙午", Month: "庚寅", Day: "辛巳", Hour: "甲午"})
	require.NoError(t, err)

	cheondeok := findMatches(res, contracts.Cheondeok)
	require.Len(t, cheondeok, 2) // 午가 년지와 시지에
	for _, m := range cheondeok {
		assert.Equal(t, ganji.O, m.Target)
	}

	woldeok := findMatches(res, contracts.Woldeok)
	require.Len(t, woldeok, 1)
	assert.Equal(t, contracts.PositionDay, woldeok[0].Position)
	assert.Equal(t, ganji.Sa, woldeok[0].Target)
}

func TestSinsalYanginOnlyYangDayStems(t *testing.T) {
	matcher := NewSinsalMatcher(testLogger())

	// 음간 일간(乙)은 양인이 없다
	res, err := matcher.Calculate(contracts.Chart{Year: "甲子", Month: "丁卯", Day: "乙卯", Hour: "庚辰"})
	require.NoError(t, err)

	assert.Empty(t, findMatches(res, contracts.Yangin))
}
