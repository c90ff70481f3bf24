package pillars

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// Request carries the caller-supplied chart parameters
type Request struct {
	LongitudeDeg  float64
	TzOffsetHours *float64 // nil이면 인스턴트의 존 오프셋 사용
	Preset        Preset
}

// Composer orchestrates the four pillar calculators into a chart
// ⭐ SSOT: 사주 조립은 여기서만
type Composer struct {
	provider contracts.TimeProvider
	lunar    contracts.LunarConverter

	year  *YearCalculator
	month *MonthCalculator
	hour  *HourCalculator

	logger *logger.Logger
}

// NewComposer creates a new four pillars composer
func NewComposer(provider contracts.TimeProvider, lunar contracts.LunarConverter, log *logger.Logger) *Composer {
	return &Composer{
		provider: provider,
		lunar:    lunar,
		year:     NewYearCalculator(provider, log),
		month:    NewMonthCalculator(log),
		hour:     NewHourCalculator(log),
		logger:   log.Component("pillars"),
	}
}

// Compose builds the complete FourPillars for a local instant
func (c *Composer) Compose(instant contracts.Instant, req Request) (*contracts.FourPillars, error) {
	tzOffset := tzOffsetHoursOf(instant)
	if req.TzOffsetHours != nil {
		tzOffset = *req.TzOffsetHours
	}
	longitude := req.LongitudeDeg
	preset := req.Preset

	// 1. Year pillar (입춘 경계)
	yearRes, err := c.year.Calculate(instant)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	// 2. Month pillar (황경 구간 + 오호둔)
	monthRes := c.month.Calculate(instant, yearRes.Pillar.Stem)

	// 3. Effective day and day pillar
	date, err := effectiveDate(instant, boundaryConfig{
		DayBoundary:      preset.DayBoundary,
		UseMeanSolarTime: preset.UseMeanSolarTimeForBoundary,
		LongitudeDeg:     &longitude,
		TzOffsetHours:    tzOffset,
	})
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	dayPillar := ganji.DayPillar(date.Year, date.Month, date.Day)

	// 4. Hour pillar (오서둔, 일간 기준)
	hourRes, err := c.hour.Calculate(instant, dayPillar.Stem,
		preset.UseMeanSolarTimeForHour, &longitude, tzOffset)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	// 5. Lunar date of the effective day (외부 변환기)
	result := &contracts.FourPillars{
		Year:             yearRes.Pillar,
		Month:            monthRes.Pillar,
		Day:              dayPillar,
		Hour:             hourRes.Pillar,
		SolarYearUsed:    yearRes.SolarYear,
		SunLongitudeDeg:  monthRes.SunLongitudeDeg,
		EffectiveDayDate: date,
		BoundaryPreset:   preset.Name,
	}

	if c.lunar != nil {
		lunarDate, err := c.lunar.GetLunarDate(date.Year, date.Month, date.Day)
		if err != nil {
			// 음력 변환 실패는 차트 자체를 막지 않는다 (범위 밖 연도 등)
			c.logger.WithError(err).Warn("Lunar conversion skipped")
		} else {
			result.Lunar = &lunarDate
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"year":   result.Year.String(),
		"month":  result.Month.String(),
		"day":    result.Day.String(),
		"hour":   result.Hour.String(),
		"preset": preset.Name,
	}).Info("Chart composed")

	return result, nil
}
