package astro

import (
	"fmt"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/pkg/logger"
)

// meanMotionDegPerDay is the mean apparent solar motion used to seed
// crossing brackets (1년 ≈ 365.25일 / 360°).
const meanMotionDegPerDay = 0.9856

// Reporter locates the solar terms around a query instant
// ⭐ SSOT: 절기 리포트 생성은 여기서만
type Reporter struct {
	provider contracts.TimeProvider
	logger   *logger.Logger
}

// NewReporter creates a new solar term reporter
func NewReporter(provider contracts.TimeProvider, log *logger.Logger) *Reporter {
	return &Reporter{
		provider: provider,
		logger:   log.Component("terms"),
	}
}

// Analyze reports the current/next terms and the surrounding 절(Jie)
// boundaries for a local instant. Jie 경계는 대운 타이밍 계산의
// 입력으로 쓰인다.
func (r *Reporter) Analyze(instant contracts.Instant) (*contracts.SolarTermInfo, error) {
	longitude := SunLongitude(instant)
	current := TermAt(longitude)

	currentEv, err := r.locate(instant, current, false)
	if err != nil {
		return nil, fmt.Errorf("current term: %w", err)
	}

	next := terms[(current.Index+1)%24]
	nextEv, err := r.locate(instant, next, true)
	if err != nil {
		return nil, fmt.Errorf("next term: %w", err)
	}

	// 가장 가까운 이전/다음 절. 현재 항이 절이면 그 자신이 이전 절.
	prevJieTerm := current
	if !current.IsJie {
		prevJieTerm = terms[(current.Index+23)%24]
	}
	prevJieEv, err := r.locate(instant, prevJieTerm, false)
	if err != nil {
		return nil, fmt.Errorf("previous jie: %w", err)
	}

	nextJieTerm := terms[(current.Index+2-current.Index%2)%24]
	nextJieEv, err := r.locate(instant, nextJieTerm, true)
	if err != nil {
		return nil, fmt.Errorf("next jie: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"longitude": longitude,
		"current":   current.Name,
		"next":      next.Name,
	}).Debug("Solar term report")

	return &contracts.SolarTermInfo{
		SunLongitudeDeg: longitude,
		Current:         currentEv,
		Next:            nextEv,
		PrevJie:         prevJieEv,
		NextJie:         nextJieEv,
	}, nil
}

// locate finds the crossing instant of one term relative to the query
// instant (forward=false면 직전 통과 시점)
func (r *Reporter) locate(query contracts.Instant, term contracts.SolarTerm, forward bool) (contracts.SolarTermEvent, error) {
	longitude := SunLongitude(query)

	// Seed the bracket from the mean solar motion, ±2 days wide; the
	// locator expands further if the estimate misses.
	var offsetDays float64
	if forward {
		offsetDays = normalizeDeg(term.LongitudeDeg-longitude) / meanMotionDegPerDay
		if offsetDays == 0 {
			offsetDays = 360.0 / meanMotionDegPerDay
		}
	} else {
		offsetDays = -normalizeDeg(longitude-term.LongitudeDeg) / meanMotionDegPerDay
	}

	center := query.ToUTC().PlusMinutes(int(offsetDays * 24 * 60))
	start := center.MinusDays(2)
	end := center.PlusDays(2)

	crossing, err := LocateCrossing(r.provider, term.LongitudeDeg, start, end)
	if err != nil {
		return contracts.SolarTermEvent{}, err
	}

	local, err := crossing.SetZone(query.ZoneName())
	if err != nil {
		return contracts.SolarTermEvent{}, fmt.Errorf("convert crossing to %s: %w", query.ZoneName(), err)
	}

	diffMillis := crossing.ToMillis() - query.ToMillis()

	return contracts.SolarTermEvent{
		Term:         term,
		InstantUTC:   crossing.ToISO(),
		InstantLocal: local.ToISO(),
		Millis:       crossing.ToMillis(),
		DayOffset:    int(diffMillis / dayMillis),
	}, nil
}
