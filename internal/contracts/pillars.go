package contracts

import (
	"encoding/json"
	"fmt"

	"github.com/wonny/saju/internal/ganji"
)

// PillarPosition identifies which of the four pillars a value belongs to
type PillarPosition int

const (
	PositionYear PillarPosition = iota
	PositionMonth
	PositionDay
	PositionHour
)

// positionNames maps PillarPosition to its Korean name
var positionNames = [4]string{"년주", "월주", "일주", "시주"}

// String returns the Korean name of the position
func (p PillarPosition) String() string {
	if p < PositionYear || p > PositionHour {
		return fmt.Sprintf("PillarPosition(%d)", int(p))
	}
	return positionNames[p]
}

// MarshalJSON serializes the position as its Korean name
func (p PillarPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Date is a plain calendar date (연월일)
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String returns the ISO form of the date
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FourPillars is the complete chart: 사주 네 기둥과 계산 메타데이터.
// 모든 필드는 생성 후 불변이며 호출자가 단독 소유한다.
type FourPillars struct {
	Year  ganji.Pillar `json:"year"`
	Month ganji.Pillar `json:"month"`
	Day   ganji.Pillar `json:"day"`
	Hour  ganji.Pillar `json:"hour"`

	// Metadata
	SolarYearUsed    int     `json:"solar_year_used"`    // 입춘 기준 연도
	SunLongitudeDeg  float64 `json:"sun_longitude_deg"`  // 월주 판정에 쓴 태양 황경
	EffectiveDayDate Date    `json:"effective_day_date"` // 일 경계 보정 후 날짜
	BoundaryPreset   string  `json:"boundary_preset"`

	// Lunar date of the effective day (외부 변환기 결과)
	Lunar *LunarDate `json:"lunar,omitempty"`
}

// Chart is the four pillar strings form consumed by the analysis engines
type Chart struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// Chart returns the canonical four pillar strings of the chart
func (f *FourPillars) Chart() Chart {
	return Chart{
		Year:  f.Year.String(),
		Month: f.Month.String(),
		Day:   f.Day.String(),
		Hour:  f.Hour.String(),
	}
}

// Pillars parses the chart back into typed pillars in position order
// (년, 월, 일, 시). Any symbol outside the closed domain fails.
func (c Chart) Pillars() ([4]ganji.Pillar, error) {
	var out [4]ganji.Pillar

	for i, s := range [4]string{c.Year, c.Month, c.Day, c.Hour} {
		p, err := ganji.ParsePillar(s)
		if err != nil {
			return out, fmt.Errorf("%s pillar: %w", PillarPosition(i), err)
		}
		out[i] = p
	}

	return out, nil
}
