package pillars

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
	"github.com/wonny/saju/pkg/logger"
)

// HourResult is the hour pillar
type HourResult struct {
	Pillar ganji.Pillar
}

// HourCalculator computes the hour pillar (시주)
// ⭐ SSOT: 시주 계산은 여기서만 — 23시 기준 2시간 버킷 + 오서둔
type HourCalculator struct {
	logger *logger.Logger
}

// NewHourCalculator creates a new hour pillar calculator
func NewHourCalculator(log *logger.Logger) *HourCalculator {
	return &HourCalculator{logger: log.Component("pillars")}
}

// Calculate resolves the hour pillar. The hour branch is a 2-hour
// bucket anchored at 23:00; the hour stem follows the 오서둔(五鼠遁)
// rule from the effective day's stem.
func (c *HourCalculator) Calculate(instant contracts.Instant, dayStem ganji.Stem, useMeanSolarTime bool, longitudeDeg *float64, tzOffsetHours float64) (HourResult, error) {
	t := instant
	if useMeanSolarTime {
		if longitudeDeg == nil {
			return HourResult{}, fmt.Errorf("hour pillar: %w", ErrLongitudeRequired)
		}
		t = t.PlusMinutes(meanSolarShiftMinutes(*longitudeDeg, tzOffsetHours))
	}

	branchIdx := ((t.Hour() + 1) / 2) % 12
	stemIdx := (int(dayStem)*2 + branchIdx) % 10

	pillar := ganji.Pillar{Stem: ganji.Stem(stemIdx), Branch: ganji.Branch(branchIdx)}

	c.logger.WithFields(map[string]interface{}{
		"hour":   t.Hour(),
		"pillar": pillar.String(),
	}).Debug("Hour pillar")

	return HourResult{Pillar: pillar}, nil
}
