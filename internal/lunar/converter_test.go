package lunar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/contracts"
)

func TestGetLunarDateNewYears(t *testing.T) {
	c := NewConverter()

	// 설날(음력 1월 1일) 양력 날짜들
	tests := []struct {
		gy, gm, gd int
		lunarYear  int
	}{
		{1900, 1, 31, 1900}, // table base
		{1985, 2, 20, 1985},
		{2000, 2, 5, 2000},
		{2024, 2, 10, 2024},
	}

	for _, tt := range tests {
		got, err := c.GetLunarDate(tt.gy, tt.gm, tt.gd)
		require.NoError(t, err)
		assert.Equal(t, contracts.LunarDate{
			LunarYear:  tt.lunarYear,
			LunarMonth: 1,
			LunarDay:   1,
		}, got, "%04d-%02d-%02d", tt.gy, tt.gm, tt.gd)
	}
}

func TestGetLunarDateBeforeNewYear(t *testing.T) {
	c := NewConverter()

	// 2000년 설 전날은 기묘년 섣달 그믐
	got, err := c.GetLunarDate(2000, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1999, got.LunarYear)
	assert.Equal(t, 12, got.LunarMonth)
	assert.False(t, got.IsLeapMonth)
}

func TestGetLunarDateLeapMonth(t *testing.T) {
	c := NewConverter()

	// 2004년에는 윤2월이 있었다
	got, err := c.GetLunarDate(2004, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 2004, got.LunarYear)
	assert.Equal(t, 2, got.LunarMonth)
	assert.True(t, got.IsLeapMonth)
}

func TestGetLunarDateMidYear(t *testing.T) {
	c := NewConverter()

	got, err := c.GetLunarDate(1985, 5, 15)
	require.NoError(t, err)
	assert.Equal(t, 1985, got.LunarYear)
	assert.Equal(t, 3, got.LunarMonth)
	assert.Equal(t, 26, got.LunarDay)
	assert.False(t, got.IsLeapMonth)
}

func TestGetLunarDateOutOfRange(t *testing.T) {
	c := NewConverter()

	_, err := c.GetLunarDate(1900, 1, 30)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.GetLunarDate(2150, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLunarMonthLengthsAreSane(t *testing.T) {
	// 연간 일수는 353~385일 사이여야 한다
	for y := 1900; y <= 2100; y++ {
		yd := yearDays(y)
		assert.GreaterOrEqual(t, yd, 353, "year %d", y)
		assert.LessOrEqual(t, yd, 385, "year %d", y)

		if leapMonth(y) == 0 {
			assert.LessOrEqual(t, yd, 355, "non-leap year %d", y)
		} else {
			assert.GreaterOrEqual(t, yd, 377, "leap year %d", y)
		}
	}
}
