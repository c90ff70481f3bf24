package pillars

import (
	"fmt"
	"math"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

// boundaryConfig carries the resolved day-boundary policy
type boundaryConfig struct {
	DayBoundary      DayBoundary
	UseMeanSolarTime bool
	LongitudeDeg     *float64
	TzOffsetHours    float64
}

// meanSolarShiftMinutes is the wall-clock correction from zone time to
// local mean solar time: 경도 1°당 4분.
func meanSolarShiftMinutes(longitudeDeg, tzOffsetHours float64) int {
	return int(math.Round(4.0 * (longitudeDeg - 15.0*tzOffsetHours)))
}

// effectiveDate resolves the calendar date that owns the instant's day
// pillar, applying the mean-solar-time shift and the 자시 rollover.
func effectiveDate(instant contracts.Instant, cfg boundaryConfig) (contracts.Date, error) {
	t := instant

	if cfg.UseMeanSolarTime {
		if cfg.LongitudeDeg == nil {
			return contracts.Date{}, ErrLongitudeRequired
		}
		t = t.PlusMinutes(meanSolarShiftMinutes(*cfg.LongitudeDeg, cfg.TzOffsetHours))
	}

	switch cfg.DayBoundary {
	case BoundaryMidnight:
		// 날짜 그대로
	case BoundaryZi23:
		// 23시부터는 다음 날의 자시
		if t.Hour() >= 23 {
			t = t.PlusDays(1)
		}
	default:
		return contracts.Date{}, fmt.Errorf("%w: %q", ErrUnknownBoundary, cfg.DayBoundary)
	}

	return contracts.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// tzOffsetHoursOf derives the instant's UTC offset from wall-clock
// fields, for callers that do not pass one explicitly.
func tzOffsetHoursOf(instant contracts.Instant) float64 {
	local := wallMinutes(instant)
	utc := wallMinutes(instant.ToUTC())
	return float64(local-utc) / 60.0
}

// wallMinutes linearizes an instant's wall-clock fields to minutes
func wallMinutes(t contracts.Instant) int {
	return ganji.JDN(t.Year(), t.Month(), t.Day())*24*60 + t.Hour()*60 + t.Minute()
}
