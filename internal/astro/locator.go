package astro

import (
	"errors"
	"fmt"
	"math"

	"github.com/wonny/saju/internal/contracts"
)

// ErrBracketFailed means no sign change was found around the expected
// crossing even after expanding the search interval. 재시도 대상이
// 아니라 로직 결함이다.
var ErrBracketFailed = errors.New("failed to bracket solar term")

const (
	maxBracketExpansions = 10
	maxBisectIterations  = 80
	convergenceDeg       = 1e-6
	dayMillis            = int64(24 * 60 * 60 * 1000)
)

// LocateCrossing finds the UTC instant at which the sun crosses the
// target ecliptic longitude (15°의 배수), starting from a bracketing
// interval [start, end] expected to contain the crossing.
func LocateCrossing(provider contracts.TimeProvider, targetDeg float64, start, end contracts.Instant) (contracts.Instant, error) {
	f := func(ms int64) (float64, error) {
		t, err := provider.FromMillis(ms, "UTC")
		if err != nil {
			return 0, fmt.Errorf("locate crossing: %w", err)
		}
		return SignedAngleDiff(SunLongitude(t), targetDeg), nil
	}

	lo := start.ToMillis()
	hi := end.ToMillis()

	fLo, err := f(lo)
	if err != nil {
		return nil, err
	}
	fHi, err := f(hi)
	if err != nil {
		return nil, err
	}

	// Expand the bracket by ±1 day per attempt until a sign change
	// appears. 10회 초과면 치명적 오류.
	expansions := 0
	for fLo*fHi > 0 {
		if expansions >= maxBracketExpansions {
			return nil, fmt.Errorf("%w: target %.1f° not in [%s, %s] after %d expansions",
				ErrBracketFailed, targetDeg, start.ToISO(), end.ToISO(), expansions)
		}
		expansions++

		lo -= dayMillis
		hi += dayMillis

		if fLo, err = f(lo); err != nil {
			return nil, err
		}
		if fHi, err = f(hi); err != nil {
			return nil, err
		}
	}

	// Bisection on millisecond midpoints
	mid := lo
	for i := 0; i < maxBisectIterations; i++ {
		mid = lo + (hi-lo)/2

		fMid, err := f(mid)
		if err != nil {
			return nil, err
		}

		if math.Abs(fMid) < convergenceDeg {
			break
		}

		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}

	return provider.FromMillis(mid, "UTC")
}
