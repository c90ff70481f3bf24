package pillars

import (
	"fmt"

	"github.com/wonny/saju/internal/astro"
	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// anchorYear is the 甲子 anchor for the sexagenary year cycle
const anchorYear = 1984

// YearResult is the year pillar with its solar year
type YearResult struct {
	Pillar    ganji.Pillar
	Idx60     int
	SolarYear int
}

// YearCalculator computes the year pillar (년주)
// ⭐ SSOT: 연주 계산은 여기서만 — 경계는 달력 연도가 아니라 입춘
type YearCalculator struct {
	provider contracts.TimeProvider
	logger   *logger.Logger
}

// NewYearCalculator creates a new year pillar calculator
func NewYearCalculator(provider contracts.TimeProvider, log *logger.Logger) *YearCalculator {
	return &YearCalculator{
		provider: provider,
		logger:   log.Component("pillars"),
	}
}

// Calculate resolves the year pillar for a local instant. The
// sexagenary year begins at the 입춘(315°) instant of the calendar
// year, not on January 1.
func (c *YearCalculator) Calculate(instant contracts.Instant) (YearResult, error) {
	calendarYear := instant.Year()

	lichun, err := c.lichunInstant(calendarYear)
	if err != nil {
		return YearResult{}, fmt.Errorf("year pillar: %w", err)
	}

	lichunLocal, err := lichun.SetZone(instant.ZoneName())
	if err != nil {
		return YearResult{}, fmt.Errorf("year pillar: convert lichun to %s: %w", instant.ZoneName(), err)
	}

	solarYear := calendarYear
	if !instant.IsGreaterThanOrEqual(lichunLocal) {
		solarYear = calendarYear - 1
	}

	idx := ((solarYear-anchorYear)%60 + 60) % 60
	pillar := ganji.PillarFromIndex(idx)

	c.logger.WithFields(map[string]interface{}{
		"calendar_year": calendarYear,
		"solar_year":    solarYear,
		"pillar":        pillar.String(),
	}).Debug("Year pillar")

	return YearResult{Pillar: pillar, Idx60: idx, SolarYear: solarYear}, nil
}

// lichunInstant locates the 입춘 crossing of a calendar year.
// 입춘은 항상 2월 초이므로 2월 1–7일 UTC로 브래킷.
func (c *YearCalculator) lichunInstant(year int) (contracts.Instant, error) {
	start := c.provider.CreateUTC(year, 2, 1, 0, 0, 0)
	end := c.provider.CreateUTC(year, 2, 7, 0, 0, 0)

	return astro.LocateCrossing(c.provider, 315, start, end)
}
