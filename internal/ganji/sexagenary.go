package ganji

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidSymbol is returned when a character outside the closed
// 10간/12지 domain reaches a lookup.
var ErrInvalidSymbol = errors.New("invalid ganji symbol")

// dayAnchorOffset anchors the sexagenary day cycle so that
// 1985-05-15 (JDN 2446201) maps to idx60 50 (甲寅).
const dayAnchorOffset = 11

// Pillar is one stem+branch pair (주)
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// String returns the canonical two-symbol form, e.g. "甲寅"
func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// MarshalJSON serializes the pillar as its canonical two-symbol string
func (p Pillar) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// PillarFromIndex returns the pillar at a sexagenary index.
// idx60 mod 60 기준: 0 = 甲子
func PillarFromIndex(idx60 int) Pillar {
	idx := ((idx60 % 60) + 60) % 60
	return Pillar{Stem: Stem(idx % 10), Branch: Branch(idx % 12)}
}

// ParsePillar parses a canonical two-symbol pillar string, e.g. "甲寅"
func ParsePillar(s string) (Pillar, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Pillar{}, fmt.Errorf("%w: pillar %q must be exactly two symbols", ErrInvalidSymbol, s)
	}

	runes := []rune(s)

	stem, err := ParseStem(string(runes[0]))
	if err != nil {
		return Pillar{}, err
	}

	branch, err := ParseBranch(string(runes[1]))
	if err != nil {
		return Pillar{}, err
	}

	return Pillar{Stem: stem, Branch: branch}, nil
}

// JDN computes the Julian Day Number of a proleptic Gregorian date.
// 3월 기점(month ≤2 → 전년도 +12월) 표준 공식
func JDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// DayIndex returns the sexagenary index of a calendar day.
// 일진 60갑자 인덱스: 1일마다 정확히 +1 (mod 60)
func DayIndex(year, month, day int) int {
	return ((JDN(year, month, day)-dayAnchorOffset)%60 + 60) % 60
}

// DayPillar returns the day pillar (일주) of a calendar day
func DayPillar(year, month, day int) Pillar {
	return PillarFromIndex(DayIndex(year, month, day))
}
