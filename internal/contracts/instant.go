package contracts

// Instant is an opaque point in time exposed by a calendar backend.
// ⭐ SSOT: 달력 라이브러리 교체 지점 — 코어는 이 인터페이스만 사용
//
// The engine never touches a concrete time type. Every backend
// (표준 라이브러리 time, 외부 달력 라이브러리 등) binds its own
// implementation behind this seam.
type Instant interface {
	// Field getters (local to the instant's zone)
	Year() int
	Month() int // 1-12
	Day() int
	Hour() int
	Minute() int
	Second() int

	// Arithmetic
	PlusDays(n int) Instant
	MinusDays(n int) Instant
	PlusMinutes(n int) Instant

	// Timezone operations
	ToUTC() Instant
	SetZone(zone string) (Instant, error)
	ZoneName() string

	// Conversion
	ToMillis() int64
	ToISO() string

	// Ordering
	IsGreaterThanOrEqual(other Instant) bool
}

// TimeProvider constructs Instants for a specific calendar backend.
// 백엔드 로딩(비동기 초기화 포함)은 Provider 생성 시점에 끝나야 하며,
// 생성된 Provider는 부수효과 없이 동시 호출에 안전해야 한다.
type TimeProvider interface {
	FromMillis(ms int64, zone string) (Instant, error)
	CreateUTC(year, month, day, hour, minute, second int) Instant
	Now(zone string) (Instant, error)
}

// LunarDate is a converted lunisolar calendar date
type LunarDate struct {
	LunarYear   int  `json:"lunar_year"`
	LunarMonth  int  `json:"lunar_month"`
	LunarDay    int  `json:"lunar_day"`
	IsLeapMonth bool `json:"is_leap_month"`
}

// LunarConverter converts a Gregorian date to a lunisolar date
// ⭐ SSOT: 음력 변환 인터페이스
type LunarConverter interface {
	GetLunarDate(year, month, day int) (LunarDate, error)
}
