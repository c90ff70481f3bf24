package pillars

import (
	"math"

	"github.com/wonny/saju/internal/astro"
	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// fiveTigers is the 오호둔(五虎遁) table: year stem mod 5 → stem of the
// first month (寅월)
var fiveTigers = [5]ganji.Stem{
	ganji.Byeong, // 甲/己년 → 丙寅월
	ganji.Mu,     // 乙/庚년 → 戊寅월
	ganji.Gyeong, // 丙/辛년 → 庚寅월
	ganji.Im,     // 丁/壬년 → 壬寅월
	ganji.Gap,    // 戊/癸년 → 甲寅월
}

// MonthResult is the month pillar with the solar longitude behind it
type MonthResult struct {
	Pillar          ganji.Pillar
	SunLongitudeDeg float64
}

// MonthCalculator computes the month pillar (월주)
// ⭐ SSOT: 월주 계산은 여기서만 — 달력 월이 아니라 태양 황경 구간
type MonthCalculator struct {
	logger *logger.Logger
}

// NewMonthCalculator creates a new month pillar calculator
func NewMonthCalculator(log *logger.Logger) *MonthCalculator {
	return &MonthCalculator{logger: log.Component("pillars")}
}

// Calculate resolves the month pillar for a local instant given the
// year stem. 월지는 30° 황경 구간(입춘 = 寅월 시작), 월간은 오호둔.
func (c *MonthCalculator) Calculate(instant contracts.Instant, yearStem ganji.Stem) MonthResult {
	longitude := astro.SunLongitude(instant)

	// 입춘(315°)이 寅(인덱스 2)의 시작이 되도록 45° 오프셋
	branchIdx := (int(math.Floor(math.Mod(longitude+45.0, 360.0)/30.0)) + 2) % 12
	branch := ganji.Branch(branchIdx)

	// 寅월로부터의 오프셋만큼 월간 증가
	monthOffset := ((branchIdx - 2) + 12) % 12
	stem := ganji.Stem((int(fiveTigers[int(yearStem)%5]) + monthOffset) % 10)

	pillar := ganji.Pillar{Stem: stem, Branch: branch}

	c.logger.WithFields(map[string]interface{}{
		"longitude": longitude,
		"pillar":    pillar.String(),
	}).Debug("Month pillar")

	return MonthResult{Pillar: pillar, SunLongitudeDeg: longitude}
}
