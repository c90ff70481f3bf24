package ganji

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndexAnchor(t *testing.T) {
	// 1985-05-15 = 甲寅日 (idx60 50), the fixed anchor vector
	idx := DayIndex(1985, 5, 15)
	assert.Equal(t, 50, idx)
	assert.Equal(t, "甲寅", DayPillar(1985, 5, 15).String())
}

func TestDayIndexSuccession(t *testing.T) {
	// 일진은 하루마다 정확히 +1 (mod 60), 연말/윤일 경계 포함
	starts := []time.Time{
		time.Date(1985, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 25, 0, 0, 0, 0, time.UTC), // year rollover
		time.Date(2000, 2, 25, 0, 0, 0, 0, time.UTC),  // leap day
		time.Date(1899, 12, 28, 0, 0, 0, 0, time.UTC),
	}

	for _, start := range starts {
		for i := 0; i < 10; i++ {
			cur := start.AddDate(0, 0, i)
			next := start.AddDate(0, 0, i+1)

			curIdx := DayIndex(cur.Year(), int(cur.Month()), cur.Day())
			nextIdx := DayIndex(next.Year(), int(next.Month()), next.Day())

			assert.Equal(t, (curIdx+1)%60, nextIdx,
				"succession broken after %s", cur.Format("2006-01-02"))
		}
	}
}

func TestJDNKnownValues(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2000, 1, 1, 2451545}, // J2000.0 noon epoch day
		{1985, 5, 15, 2446201},
		{1984, 2, 2, 2445733},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JDN(tt.year, tt.month, tt.day), "JDN(%d,%d,%d)", tt.year, tt.month, tt.day)
	}
}

func TestPillarFromIndex(t *testing.T) {
	assert.Equal(t, "甲子", PillarFromIndex(0).String())
	assert.Equal(t, "乙丑", PillarFromIndex(1).String())
	assert.Equal(t, "癸亥", PillarFromIndex(59).String())
	// mod-60 and negative inputs normalize
	assert.Equal(t, "甲子", PillarFromIndex(60).String())
	assert.Equal(t, "癸亥", PillarFromIndex(-1).String())
}

func TestParsePillar(t *testing.T) {
	p, err := ParsePillar("甲寅")
	require.NoError(t, err)
	assert.Equal(t, Gap, p.Stem)
	assert.Equal(t, In, p.Branch)
	assert.Equal(t, "甲寅", p.String())

	_, err = ParsePillar("甲")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = ParsePillar("寅甲") // branch first is invalid
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = ParsePillar("XY")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}
