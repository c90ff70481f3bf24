package ganji

import (
	"encoding/json"
	"fmt"
)

// Stem represents one of the ten heavenly stems (천간)
// ⭐ SSOT: 천간 속성 테이블은 이 파일에서만
type Stem int

const (
	Gap   Stem = iota // 甲
	Eul               // 乙
	Byeong            // 丙
	Jeong             // 丁
	Mu                // 戊
	Gi                // 己
	Gyeong            // 庚
	Sin               // 辛
	Im                // 壬
	Gye               // 癸
)

// stemSymbols maps Stem to its Hanja symbol
var stemSymbols = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// stemElements maps Stem to its fixed element
var stemElements = [10]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

// stemIndex resolves a Hanja symbol back to its Stem
var stemIndex = func() map[string]Stem {
	m := make(map[string]Stem, 10)
	for i, s := range stemSymbols {
		m[s] = Stem(i)
	}
	return m
}()

// String returns the Hanja symbol of the stem
func (s Stem) String() string {
	if s < Gap || s > Gye {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemSymbols[s]
}

// MarshalJSON serializes the stem as its Hanja symbol
func (s Stem) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Element returns the fixed element of the stem
func (s Stem) Element() Element {
	return stemElements[s]
}

// Polarity returns the fixed polarity of the stem.
// 짝수 인덱스(甲丙戊庚壬)가 양간
func (s Stem) Polarity() Polarity {
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// ParseStem resolves a single Hanja symbol to a Stem.
// The ten-symbol domain is closed; anything else is a caller error.
func ParseStem(symbol string) (Stem, error) {
	s, ok := stemIndex[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a heavenly stem", ErrInvalidSymbol, symbol)
	}
	return s, nil
}
