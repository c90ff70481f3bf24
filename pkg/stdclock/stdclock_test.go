package stdclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldGetters(t *testing.T) {
	p := NewProvider()

	inst := p.CreateUTC(1985, 5, 15, 6, 30, 45)

	assert.Equal(t, 1985, inst.Year())
	assert.Equal(t, 5, inst.Month())
	assert.Equal(t, 15, inst.Day())
	assert.Equal(t, 6, inst.Hour())
	assert.Equal(t, 30, inst.Minute())
	assert.Equal(t, 45, inst.Second())
	assert.Equal(t, "UTC", inst.ZoneName())
}

func TestZoneConversion(t *testing.T) {
	p := NewProvider()

	utc := p.CreateUTC(2000, 1, 1, 9, 0, 0)

	seoul, err := utc.SetZone("Asia/Seoul")
	require.NoError(t, err)

	// KST = UTC+9
	assert.Equal(t, 18, seoul.Hour())
	assert.Equal(t, 1, seoul.Day())
	assert.Equal(t, "Asia/Seoul", seoul.ZoneName())

	// Same instant, different wall clock
	assert.Equal(t, utc.ToMillis(), seoul.ToMillis())

	back := seoul.ToUTC()
	assert.Equal(t, 9, back.Hour())

	_, err = utc.SetZone("Not/AZone")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	p := NewProvider()

	inst := p.CreateUTC(1999, 12, 31, 23, 30, 0)

	next := inst.PlusDays(1)
	assert.Equal(t, 2000, next.Year())
	assert.Equal(t, 1, next.Month())
	assert.Equal(t, 1, next.Day())

	prev := next.MinusDays(1)
	assert.Equal(t, inst.ToMillis(), prev.ToMillis())

	rolled := inst.PlusMinutes(31)
	assert.Equal(t, 2000, rolled.Year())
	assert.Equal(t, 0, rolled.Hour())
	assert.Equal(t, 1, rolled.Minute())
}

func TestFromMillisRoundTrip(t *testing.T) {
	p := NewProvider()

	inst := p.CreateUTC(1985, 5, 15, 0, 30, 0)

	round, err := p.FromMillis(inst.ToMillis(), "UTC")
	require.NoError(t, err)
	assert.Equal(t, inst.ToMillis(), round.ToMillis())
	assert.Equal(t, inst.ToISO(), round.ToISO())
}

func TestOrdering(t *testing.T) {
	p := NewProvider()

	a := p.CreateUTC(1984, 2, 4, 0, 0, 0)
	b := p.CreateUTC(1984, 2, 4, 0, 0, 1)

	assert.True(t, b.IsGreaterThanOrEqual(a))
	assert.True(t, a.IsGreaterThanOrEqual(a))
	assert.False(t, a.IsGreaterThanOrEqual(b))
}

func TestFromTime(t *testing.T) {
	base := time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC)
	inst := FromTime(base)

	assert.Equal(t, base.UnixMilli(), inst.ToMillis())
}
