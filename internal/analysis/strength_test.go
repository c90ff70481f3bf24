package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

func TestStrengthReferenceChart(t *testing.T) {
	calc := NewStrengthCalculator(testLogger())

	res, err := calc.Calculate(chartA)
	require.NoError(t, err)

	assert.Equal(t, ganji.Mu, res.DayMaster)

	// 실령(토 일간, 子월 0.3) + 약한 통근 → 신약
	assert.InDelta(t, 27.9, res.Score, 0.05)
	assert.Equal(t, contracts.SinYak, res.Level)

	assert.InDelta(t, 0.3, res.Factors.DeukRyeong, 1e-9)
	assert.InDelta(t, 0.52, res.Factors.TongGeun, 1e-9)
	assert.InDelta(t, 0.0, res.Factors.TransparentBonus, 1e-9)
	assert.Equal(t, 2, res.Factors.HelperStemCount)
	assert.Equal(t, 3, res.Factors.HelpCount)
	assert.Equal(t, 4, res.Factors.WeakenCount)

	// 득지/득세는 반환은 되지만 점수에는 들어가지 않는다
	assert.True(t, res.Factors.DeukJi)
	assert.Equal(t, 1, res.Factors.DeukSe)
}

func TestStrengthHelperIncreasesBand(t *testing.T) {
	calc := NewStrengthCalculator(testLogger())

	base, err := calc.Calculate(chartA)
	require.NoError(t, err)

	// 시간 辛(상관)을 丁(정인)으로 바꾸면 돕는 글자가 늘어난다
	more, err := calc.Calculate(contracts.Chart{Year: "己卯", Month: "丙子", Day: "戊午", Hour: "丁酉"})
	require.NoError(t, err)

	assert.Greater(t, more.Factors.HelperStemCount, base.Factors.HelperStemCount)
	assert.Greater(t, more.Score, base.Score)
	assert.GreaterOrEqual(t, int(more.Level), int(base.Level))
}

func TestLevelForScoreBands(t *testing.T) {
	tests := []struct {
		score float64
		want  contracts.StrengthLevel
	}{
		{-20, contracts.GeukYak},
		{10, contracts.GeukYak},
		{10.1, contracts.TaeYak},
		{20, contracts.TaeYak},
		{27.9, contracts.SinYak},
		{38, contracts.JunghwaSinYak},
		{45, contracts.Junghwa},
		{55, contracts.JunghwaSinGang},
		{70, contracts.SinGang},
		{85, contracts.TaeGang},
		{85.1, contracts.GeukWang},
		{120, contracts.GeukWang},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelForScore(tt.score), "score %.1f", tt.score)
	}
}

func TestLevelForScoreMonotonic(t *testing.T) {
	prev := levelForScore(-50)
	for s := -50.0; s <= 120; s += 0.5 {
		cur := levelForScore(s)
		assert.GreaterOrEqual(t, int(cur), int(prev), "score %.1f", s)
		prev = cur
	}
}

func TestSeasonalMultiplierTable(t *testing.T) {
	// 모든 배수는 [0,1], 각 오행은 제철에 1.0
	for e := 0; e < 5; e++ {
		for s := 0; s < 6; s++ {
			m := seasonalMultiplier[e][s]
			assert.GreaterOrEqual(t, m, 0.0)
			assert.LessOrEqual(t, m, 1.0)
		}
	}

	assert.Equal(t, 1.0, seasonalMultiplier[ganji.Wood][seasonSpring])
	assert.Equal(t, 1.0, seasonalMultiplier[ganji.Fire][seasonSummer])
	assert.Equal(t, 1.0, seasonalMultiplier[ganji.Metal][seasonAutumn])
	assert.Equal(t, 1.0, seasonalMultiplier[ganji.Water][seasonWinter])
	assert.Equal(t, 1.0, seasonalMultiplier[ganji.Earth][seasonDryEarth])
}
