package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

func TestRelationsReferenceChart(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	// 卯子午酉: 도화지가 모두 모인 차트
	res, err := analyzer.Calculate(chartA)
	require.NoError(t, err)

	// 丙辛合水: 子월이 수를 도우므로 화(化)
	combos := res.OfType(contracts.StemCombination)
	require.Len(t, combos, 1)
	assert.ElementsMatch(t, []string{"丙", "辛"}, combos[0].Symbols)
	require.NotNil(t, combos[0].ResultElement)
	assert.Equal(t, ganji.Water, *combos[0].ResultElement)
	assert.Equal(t, contracts.StatusTransformed, combos[0].Status)

	// 子午충, 卯酉충
	clashes := res.OfType(contracts.Clash)
	assert.Len(t, clashes, 2)

	// 子酉파, 卯午파
	assert.Len(t, res.OfType(contracts.Destruction), 2)

	// 子卯형
	punishments := res.OfType(contracts.Punishment)
	require.Len(t, punishments, 1)
	assert.ElementsMatch(t, []string{"卯", "子"}, punishments[0].Symbols)

	assert.Empty(t, res.OfType(contracts.SixCombination))
	assert.Empty(t, res.OfType(contracts.TripleCombination))
	assert.Empty(t, res.OfType(contracts.Harm))
}

func TestRelationsCompleteTripleCombination(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	// 申子辰 수국 완성, 子월이 뒷받침
	res, err := analyzer.Calculate(contracts.Chart{Year: "壬申", Month: "壬子", Day: "甲辰", Hour: "丙寅"})
	require.NoError(t, err)

	triples := res.OfType(contracts.TripleCombination)
	require.Len(t, triples, 1)
	assert.True(t, triples[0].IsComplete)
	assert.Equal(t, contracts.StatusTransformed, triples[0].Status)
	require.NotNil(t, triples[0].ResultElement)
	assert.Equal(t, ganji.Water, *triples[0].ResultElement)
	assert.ElementsMatch(t, []string{"申", "子", "辰"}, triples[0].Symbols)

	// 寅申충과 寅巳申 중 두 자 형도 함께 검출
	assert.Len(t, res.OfType(contracts.Clash), 1)
	assert.Len(t, res.OfType(contracts.Punishment), 1)
}

func TestRelationsHalfCombination(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	// 申子만 모이면 반합
	res, err := analyzer.Calculate(contracts.Chart{Year: "甲申", Month: "丙子", Day: "戊戌", Hour: "庚午"})
	require.NoError(t, err)

	var waterHalf *contracts.Relation
	for _, rel := range res.OfType(contracts.TripleCombination) {
		if rel.ResultElement != nil && *rel.ResultElement == ganji.Water {
			waterHalf = &rel
			break
		}
	}
	require.NotNil(t, waterHalf)
	assert.False(t, waterHalf.IsComplete)
	assert.Equal(t, contracts.StatusHalfCombined, waterHalf.Status)
}

func TestRelationsSixCombinationNotTransformed(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	// 辰酉合金이되 금의 세력이 없으면 불화
	res, err := analyzer.Calculate(contracts.Chart{Year: "甲辰", Month: "丁卯", Day: "丁酉", Hour: "壬寅"})
	require.NoError(t, err)

	sixes := res.OfType(contracts.SixCombination)
	require.Len(t, sixes, 1)
	assert.Equal(t, contracts.StatusNotTransformed, sixes[0].Status)
	assert.NotEmpty(t, sixes[0].Reason)

	// 丁壬合木은 卯월의 뒷받침으로 화 — 같은 천간 쌍이 둘이라 두 번 검출
	combos := res.OfType(contracts.StemCombination)
	require.Len(t, combos, 2)
	for _, combo := range combos {
		assert.Equal(t, contracts.StatusTransformed, combo.Status)
	}
}

func TestRelationsSelfPunishment(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	// 午 두 자 → 자형
	res, err := analyzer.Calculate(contracts.Chart{Year: "甲午", Month: "庚午", Day: "戊寅", Hour: "癸丑"})
	require.NoError(t, err)

	var self *contracts.Relation
	for _, rel := range res.OfType(contracts.Punishment) {
		if len(rel.Symbols) == 1 && rel.Symbols[0] == "午" {
			self = &rel
			break
		}
	}
	require.NotNil(t, self)
	assert.Len(t, self.Positions, 2)
}

func TestRelationsPairDetectionSymmetric(t *testing.T) {
	analyzer := NewRelationsAnalyzer(testLogger())

	a, err := analyzer.Calculate(chartA)
	require.NoError(t, err)

	// 년주와 시주를 맞바꿔도 같은 관계가 같은 수만큼 검출된다
	swapped, err := analyzer.Calculate(contracts.Chart{Year: "辛酉", Month: "丙子", Day: "戊午", Hour: "己卯"})
	require.NoError(t, err)

	for rt := contracts.StemCombination; rt <= contracts.Destruction; rt++ {
		assert.Len(t, swapped.OfType(rt), len(a.OfType(rt)), "type %s", rt)
	}
}
