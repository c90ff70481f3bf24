package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(&bytes.Buffer{}, "error")
}

// chartA is the reference chart: 2000-01-01 18:00 서울
var chartA = contracts.Chart{Year: "己卯", Month: "丙子", Day: "戊午", Hour: "辛酉"}

func TestClassifyStemAgainstGapDayMaster(t *testing.T) {
	// 갑목 일간 기준 열 가지 전부
	expected := []contracts.TenGod{
		contracts.BiGyeon,   // 甲
		contracts.GeopJae,   // 乙
		contracts.SikSin,    // 丙
		contracts.SangGwan,  // 丁
		contracts.PyeonJae,  // 戊
		contracts.JeongJae,  // 己
		contracts.PyeonGwan, // 庚
		contracts.JeongGwan, // 辛
		contracts.PyeonIn,   // 壬
		contracts.JeongIn,   // 癸
	}

	for i, want := range expected {
		got := ClassifyStem(ganji.Gap, ganji.Stem(i))
		assert.Equal(t, want, got, "甲 vs %s", ganji.Stem(i))
	}
}

func TestClassifyStemExhaustive(t *testing.T) {
	// 닫힌 오행 순환이므로 어떤 조합도 항상 정확히 하나로 분류된다
	for dm := 0; dm < 10; dm++ {
		for target := 0; target < 10; target++ {
			god := ClassifyStem(ganji.Stem(dm), ganji.Stem(target))
			assert.GreaterOrEqual(t, int(god), int(contracts.BiGyeon))
			assert.LessOrEqual(t, int(god), int(contracts.JeongIn))
		}
	}
}

func TestTenGodsCalculate(t *testing.T) {
	calc := NewTenGodsCalculator(testLogger())

	res, err := calc.Calculate(chartA)
	require.NoError(t, err)

	assert.Equal(t, ganji.Mu, res.DayMaster)

	// 천간: 己겁재 丙편인 戊비견 辛상관
	assert.Equal(t, contracts.GeopJae, res.Stems[contracts.PositionYear].God)
	assert.Equal(t, contracts.PyeonIn, res.Stems[contracts.PositionMonth].God)
	assert.Equal(t, contracts.BiGyeon, res.Stems[contracts.PositionDay].God)
	assert.Equal(t, contracts.SangGwan, res.Stems[contracts.PositionHour].God)

	// 지지 본기: 卯→乙 정관, 子→癸 정재, 午→丁 정인, 酉→辛 상관
	assert.Equal(t, ganji.Eul, res.Branches[contracts.PositionYear].PrimaryStem)
	assert.Equal(t, contracts.JeongGwan, res.Branches[contracts.PositionYear].God)
	assert.Equal(t, contracts.JeongJae, res.Branches[contracts.PositionMonth].God)
	assert.Equal(t, contracts.JeongIn, res.Branches[contracts.PositionDay].God)
	assert.Equal(t, contracts.SangGwan, res.Branches[contracts.PositionHour].God)
}

func TestTenGodsInvalidChart(t *testing.T) {
	calc := NewTenGodsCalculator(testLogger())

	_, err := calc.Calculate(contracts.Chart{Year: "XX", Month: "丙子", Day: "戊午", Hour: "辛酉"})
	assert.ErrorIs(t, err, ganji.ErrInvalidSymbol)
}
