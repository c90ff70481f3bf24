package ganji

import (
	"encoding/json"
	"fmt"
)

// Branch represents one of the twelve earthly branches (지지)
// ⭐ SSOT: 지지 속성/지장간 테이블은 이 파일에서만
type Branch int

const (
	Ja   Branch = iota // 子
	Chuk               // 丑
	In                 // 寅
	Myo                // 卯
	Jin                // 辰
	Sa                 // 巳
	O                  // 午
	Mi                 // 未
	Sinb               // 申 (Sin은 천간 辛이 사용)
	Yu                 // 酉
	Sul                // 戌
	Hae                // 亥
)

// branchSymbols maps Branch to its Hanja symbol
var branchSymbols = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// branchElements maps Branch to its fixed element
var branchElements = [12]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// branchIndex resolves a Hanja symbol back to its Branch
var branchIndex = func() map[string]Branch {
	m := make(map[string]Branch, 12)
	for i, b := range branchSymbols {
		m[b] = Branch(i)
	}
	return m
}()

// HiddenStem is one stem hidden inside a branch (지장간) with its weight.
// Weights per branch sum to 1.0; the primary (본기) comes first.
type HiddenStem struct {
	Stem   Stem
	Weight float64
}

// hiddenStems maps Branch to its ordered hidden stems (본기, 중기, 여기)
var hiddenStems = [12][]HiddenStem{
	Ja:   {{Gye, 0.7}, {Im, 0.3}},
	Chuk: {{Gi, 0.6}, {Gye, 0.3}, {Sin, 0.1}},
	In:   {{Gap, 0.6}, {Byeong, 0.2}, {Mu, 0.2}},
	Myo:  {{Eul, 0.7}, {Gap, 0.3}},
	Jin:  {{Mu, 0.6}, {Eul, 0.3}, {Gye, 0.1}},
	Sa:   {{Byeong, 0.6}, {Gyeong, 0.2}, {Mu, 0.2}},
	O:    {{Jeong, 0.6}, {Byeong, 0.3}, {Gi, 0.1}},
	Mi:   {{Gi, 0.6}, {Jeong, 0.3}, {Eul, 0.1}},
	Sinb: {{Gyeong, 0.6}, {Im, 0.2}, {Mu, 0.2}},
	Yu:   {{Sin, 0.7}, {Gyeong, 0.3}},
	Sul:  {{Mu, 0.6}, {Sin, 0.3}, {Jeong, 0.1}},
	Hae:  {{Im, 0.6}, {Gap, 0.2}, {Mu, 0.2}},
}

// String returns the Hanja symbol of the branch
func (b Branch) String() string {
	if b < Ja || b > Hae {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchSymbols[b]
}

// MarshalJSON serializes the branch as its Hanja symbol
func (b Branch) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// Element returns the fixed element of the branch
func (b Branch) Element() Element {
	return branchElements[b]
}

// Polarity returns the fixed polarity of the branch.
// 짝수 인덱스(子寅辰午申戌)가 양지
func (b Branch) Polarity() Polarity {
	if b%2 == 0 {
		return Yang
	}
	return Yin
}

// HiddenStems returns the hidden stems of the branch, primary first.
// 반환 슬라이스는 공유 테이블이므로 수정 금지
func (b Branch) HiddenStems() []HiddenStem {
	return hiddenStems[b]
}

// PrimaryStem returns the primary hidden stem (본기) of the branch
func (b Branch) PrimaryStem() Stem {
	return hiddenStems[b][0].Stem
}

// ParseBranch resolves a single Hanja symbol to a Branch.
// The twelve-symbol domain is closed; anything else is a caller error.
func ParseBranch(symbol string) (Branch, error) {
	b, ok := branchIndex[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an earthly branch", ErrInvalidSymbol, symbol)
	}
	return b, nil
}
