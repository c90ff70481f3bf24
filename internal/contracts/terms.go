package contracts

// SolarTerm is one of the 24 solar terms (절기).
// 입춘부터 세는 인덱스 기준으로 짝수 항이 절(節), 홀수 항이 기(氣).
type SolarTerm struct {
	Index        int     `json:"index"` // 0 = 입춘
	Name         string  `json:"name"`
	Hanja        string  `json:"hanja"`
	LongitudeDeg float64 `json:"longitude_deg"`
	IsJie        bool    `json:"is_jie"`
}

// SolarTermEvent is one located term crossing relative to a query instant
type SolarTermEvent struct {
	Term         SolarTerm `json:"term"`
	InstantUTC   string    `json:"instant_utc"`   // ISO-8601
	InstantLocal string    `json:"instant_local"` // ISO-8601, query zone
	Millis       int64     `json:"millis"`
	DayOffset    int       `json:"day_offset"` // 조회 시점 기준 일수 (과거 음수)
}

// SolarTermInfo is the full solar-term report for an instant
type SolarTermInfo struct {
	SunLongitudeDeg float64        `json:"sun_longitude_deg"`
	Current         SolarTermEvent `json:"current"`  // 직전 통과 절기
	Next            SolarTermEvent `json:"next"`     // 다음 절기
	PrevJie         SolarTermEvent `json:"prev_jie"` // 직전 절(월 경계)
	NextJie         SolarTermEvent `json:"next_jie"` // 다음 절(월 경계)
}
