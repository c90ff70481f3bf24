package astro

import (
	"math"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

// 저정밀 태양 위치 (Meeus 다항식). 절기 판정에는 0.01° 정밀도면 충분.

const degToRad = math.Pi / 180.0

// JulianDay returns the fractional Julian Day of an instant (UTC 기준)
func JulianDay(t contracts.Instant) float64 {
	u := t.ToUTC()

	jdn := ganji.JDN(u.Year(), u.Month(), u.Day())
	frac := (float64(u.Hour())-12.0)/24.0 +
		float64(u.Minute())/1440.0 +
		float64(u.Second())/86400.0

	return float64(jdn) + frac
}

// SunLongitude returns the apparent ecliptic longitude of the sun in
// degrees, normalized to [0,360).
func SunLongitude(t contracts.Instant) float64 {
	jd := JulianDay(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(M*degToRad) +
		(0.019993-0.000101*T)*math.Sin(2*M*degToRad) +
		0.000289*math.Sin(3*M*degToRad)

	trueLongitude := L0 + C

	// Nutation/aberration correction → apparent longitude
	omega := 125.04 - 1934.136*T
	apparent := trueLongitude - 0.00569 - 0.00478*math.Sin(omega*degToRad)

	return normalizeDeg(apparent)
}

// SignedAngleDiff maps a−b into (−180,180], handling the 360°→0° wrap
func SignedAngleDiff(a, b float64) float64 {
	return math.Mod(a-b+540.0, 360.0) - 180.0
}

// normalizeDeg wraps an angle into [0,360)
func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
