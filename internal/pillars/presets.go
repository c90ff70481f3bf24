package pillars

import (
	"errors"
	"fmt"
)

// DayBoundary selects when the sexagenary day rolls over
type DayBoundary string

const (
	// BoundaryMidnight uses the civil calendar date as-is
	BoundaryMidnight DayBoundary = "midnight"
	// BoundaryZi23 rolls the date forward from 23:00 (자시 전통)
	BoundaryZi23 DayBoundary = "zi23"
)

// ErrUnknownBoundary is returned for a DayBoundary outside the closed set
var ErrUnknownBoundary = errors.New("unknown day boundary")

// ErrLongitudeRequired is returned when a mean-solar-time correction is
// enabled without a longitude to correct with
var ErrLongitudeRequired = errors.New("longitudeDeg is required when mean solar time correction is enabled")

// Preset bundles the boundary/correction policy under a name
// ⭐ SSOT: 사주 계산 프리셋 정의는 여기서만
type Preset struct {
	Name                        string      `json:"name"`
	DayBoundary                 DayBoundary `json:"day_boundary"`
	UseMeanSolarTimeForHour     bool        `json:"use_mean_solar_time_for_hour"`
	UseMeanSolarTimeForBoundary bool        `json:"use_mean_solar_time_for_boundary"`
}

// PresetStandard: 자정 경계, 보정 없음
var PresetStandard = Preset{
	Name:        "standard",
	DayBoundary: BoundaryMidnight,
}

// PresetTraditional: 23시 자시 경계 + 평균태양시 보정
var PresetTraditional = Preset{
	Name:                        "traditional",
	DayBoundary:                 BoundaryZi23,
	UseMeanSolarTimeForHour:     true,
	UseMeanSolarTimeForBoundary: true,
}

// PresetByName resolves one of the built-in presets
func PresetByName(name string) (Preset, error) {
	switch name {
	case PresetStandard.Name:
		return PresetStandard, nil
	case PresetTraditional.Name:
		return PresetTraditional, nil
	default:
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
}
