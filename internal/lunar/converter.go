// Package lunar converts Gregorian dates to lunisolar dates using the
// compact encoded month-length table covering 1900–2100.
package lunar

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/ganji"
)

// ErrOutOfRange is returned for dates outside the table coverage
var ErrOutOfRange = errors.New("date outside lunar table range (1900-01-31 .. 2100-12-31)")

const (
	baseYear = 1900
	lastYear = 2100
)

// baseJDN is the JDN of 1900-01-31, lunar 1900년 1월 1일
var baseJDN = ganji.JDN(1900, 1, 31)

// Converter implements contracts.LunarConverter over the encoded table
// ⭐ SSOT: 음력 변환은 여기서만
type Converter struct{}

// NewConverter creates the table-backed lunar converter
func NewConverter() *Converter {
	return &Converter{}
}

var _ contracts.LunarConverter = (*Converter)(nil)

// GetLunarDate converts a Gregorian date to its lunisolar date
func (c *Converter) GetLunarDate(year, month, day int) (contracts.LunarDate, error) {
	offset := ganji.JDN(year, month, day) - baseJDN
	if offset < 0 {
		return contracts.LunarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrOutOfRange, year, month, day)
	}

	// Walk whole lunar years
	lunarYear := baseYear
	for lunarYear <= lastYear {
		yd := yearDays(lunarYear)
		if offset < yd {
			break
		}
		offset -= yd
		lunarYear++
	}
	if lunarYear > lastYear {
		return contracts.LunarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrOutOfRange, year, month, day)
	}

	// Walk months, inserting the leap month after its host month
	leap := leapMonth(lunarYear)
	isLeap := false
	lunarMonth := 1
	for ; lunarMonth <= 12; lunarMonth++ {
		md := monthDays(lunarYear, lunarMonth)
		if offset < md {
			break
		}
		offset -= md

		if lunarMonth == leap {
			ld := leapDays(lunarYear)
			if offset < ld {
				isLeap = true
				break
			}
			offset -= ld
		}
	}

	return contracts.LunarDate{
		LunarYear:   lunarYear,
		LunarMonth:  lunarMonth,
		LunarDay:    offset + 1,
		IsLeapMonth: isLeap,
	}, nil
}

// yearDays returns the total days of a lunar year, leap month included
func yearDays(year int) int {
	info := lunarInfo[year-baseYear]

	// 12 months of 29 days + one bit per big month
	sum := 348 + bits.OnesCount32(uint32(info&0xfff0))
	return sum + leapDays(year)
}

// monthDays returns the length of a regular lunar month (29 or 30)
func monthDays(year, month int) int {
	if lunarInfo[year-baseYear]&(0x8000>>(month-1)) != 0 {
		return 30
	}
	return 29
}

// leapMonth returns the leap month number of a year, 0 if none
func leapMonth(year int) int {
	return lunarInfo[year-baseYear] & 0xf
}

// leapDays returns the length of the leap month, 0 if none
func leapDays(year int) int {
	if leapMonth(year) == 0 {
		return 0
	}
	if lunarInfo[year-baseYear]&0x10000 != 0 {
		return 30
	}
	return 29
}
