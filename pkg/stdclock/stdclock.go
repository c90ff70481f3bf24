// Package stdclock binds the Go standard library time package behind
// the engine's Date/Time Port. 다른 달력 백엔드는 contracts.Instant /
// contracts.TimeProvider만 구현하면 교체 가능하다.
package stdclock

import (
	"fmt"
	"time"

	"github.com/wonny/saju/internal/contracts"
)

// Instant wraps a time.Time as an opaque contracts.Instant
type Instant struct {
	t time.Time
}

// FromTime wraps an existing time.Time
func FromTime(t time.Time) contracts.Instant {
	return Instant{t: t}
}

// Time returns the underlying time.Time
func (i Instant) Time() time.Time {
	return i.t
}

// Year returns the year in the instant's zone
func (i Instant) Year() int { return i.t.Year() }

// Month returns the month (1-12) in the instant's zone
func (i Instant) Month() int { return int(i.t.Month()) }

// Day returns the day of month in the instant's zone
func (i Instant) Day() int { return i.t.Day() }

// Hour returns the hour in the instant's zone
func (i Instant) Hour() int { return i.t.Hour() }

// Minute returns the minute in the instant's zone
func (i Instant) Minute() int { return i.t.Minute() }

// Second returns the second in the instant's zone
func (i Instant) Second() int { return i.t.Second() }

// PlusDays returns the instant shifted forward by n calendar days
func (i Instant) PlusDays(n int) contracts.Instant {
	return Instant{t: i.t.AddDate(0, 0, n)}
}

// MinusDays returns the instant shifted back by n calendar days
func (i Instant) MinusDays(n int) contracts.Instant {
	return Instant{t: i.t.AddDate(0, 0, -n)}
}

// PlusMinutes returns the instant shifted by n minutes
func (i Instant) PlusMinutes(n int) contracts.Instant {
	return Instant{t: i.t.Add(time.Duration(n) * time.Minute)}
}

// ToUTC returns the same instant expressed in UTC
func (i Instant) ToUTC() contracts.Instant {
	return Instant{t: i.t.UTC()}
}

// SetZone returns the same instant expressed in an IANA zone
func (i Instant) SetZone(zone string) (contracts.Instant, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return Instant{t: i.t.In(loc)}, nil
}

// ZoneName returns the IANA name of the instant's zone
func (i Instant) ZoneName() string {
	return i.t.Location().String()
}

// ToMillis returns unix milliseconds
func (i Instant) ToMillis() int64 {
	return i.t.UnixMilli()
}

// ToISO returns the RFC3339 form of the instant
func (i Instant) ToISO() string {
	return i.t.Format(time.RFC3339)
}

// IsGreaterThanOrEqual reports whether the instant is at or after other
func (i Instant) IsGreaterThanOrEqual(other contracts.Instant) bool {
	return i.t.UnixMilli() >= other.ToMillis()
}

// Provider constructs stdlib-backed Instants
// ⭐ 생성 후 상태가 없으므로 동시 호출에 안전
type Provider struct{}

// NewProvider creates the stdlib time provider
func NewProvider() *Provider {
	return &Provider{}
}

// FromMillis builds an instant from unix milliseconds in a zone
func (p *Provider) FromMillis(ms int64, zone string) (contracts.Instant, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return Instant{t: time.UnixMilli(ms).In(loc)}, nil
}

// CreateUTC builds an instant from UTC calendar fields
func (p *Provider) CreateUTC(year, month, day, hour, minute, second int) contracts.Instant {
	return Instant{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)}
}

// Now returns the current instant in a zone
func (p *Provider) Now(zone string) (contracts.Instant, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return Instant{t: time.Now().In(loc)}, nil
}
