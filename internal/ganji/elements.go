package ganji

import (
	"encoding/json"
	"fmt"
)

// Element represents one of the five elements (오행)
// ⭐ SSOT: 오행 상생/상극 관계는 이 파일에서만
type Element int

const (
	Wood Element = iota // 목
	Fire                // 화
	Earth               // 토
	Metal               // 금
	Water               // 수
)

// elementNames maps Element to its Korean name
var elementNames = [5]string{"목", "화", "토", "금", "수"}

// elementHanja maps Element to its Hanja symbol
var elementHanja = [5]string{"木", "火", "土", "金", "水"}

// String returns the Korean name of the element
func (e Element) String() string {
	if e < Wood || e > Water {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Hanja returns the Hanja symbol of the element
func (e Element) Hanja() string {
	return elementHanja[e]
}

// MarshalJSON serializes the element as its Korean name
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// Generates returns the element this element generates (상생)
// 목→화→토→금→수→목
func (e Element) Generates() Element {
	return (e + 1) % 5
}

// Controls returns the element this element controls (상극)
// 목→토, 토→수, 수→화, 화→금, 금→목
func (e Element) Controls() Element {
	return (e + 2) % 5
}

// GeneratedBy returns the element that generates this element
func (e Element) GeneratedBy() Element {
	return (e + 4) % 5
}

// ControlledBy returns the element that controls this element
func (e Element) ControlledBy() Element {
	return (e + 3) % 5
}

// Polarity represents yin/yang (음양)
type Polarity int

const (
	Yang Polarity = iota // 양
	Yin                  // 음
)

// String returns the Korean name of the polarity
func (p Polarity) String() string {
	if p == Yang {
		return "양"
	}
	return "음"
}
