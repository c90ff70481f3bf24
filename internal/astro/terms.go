package astro

import (
	"github.com/wonny/saju/internal/contracts"
)

// terms is the fixed table of the 24 solar terms, ordered from 입춘.
// 짝수 인덱스가 절(節, 월 경계), 홀수 인덱스가 기(氣).
var terms = [24]contracts.SolarTerm{
	{Index: 0, Name: "입춘", Hanja: "立春", LongitudeDeg: 315, IsJie: true},
	{Index: 1, Name: "우수", Hanja: "雨水", LongitudeDeg: 330, IsJie: false},
	{Index: 2, Name: "경칩", Hanja: "驚蟄", LongitudeDeg: 345, IsJie: true},
	{Index: 3, Name: "춘분", Hanja: "春分", LongitudeDeg: 0, IsJie: false},
	{Index: 4, Name: "청명", Hanja: "清明", LongitudeDeg: 15, IsJie: true},
	{Index: 5, Name: "곡우", Hanja: "穀雨", LongitudeDeg: 30, IsJie: false},
	{Index: 6, Name: "입하", Hanja: "立夏", LongitudeDeg: 45, IsJie: true},
	{Index: 7, Name: "소만", Hanja: "小滿", LongitudeDeg: 60, IsJie: false},
	{Index: 8, Name: "망종", Hanja: "芒種", LongitudeDeg: 75, IsJie: true},
	{Index: 9, Name: "하지", Hanja: "夏至", LongitudeDeg: 90, IsJie: false},
	{Index: 10, Name: "소서", Hanja: "小暑", LongitudeDeg: 105, IsJie: true},
	{Index: 11, Name: "대서", Hanja: "大暑", LongitudeDeg: 120, IsJie: false},
	{Index: 12, Name: "입추", Hanja: "立秋", LongitudeDeg: 135, IsJie: true},
	{Index: 13, Name: "처서", Hanja: "處暑", LongitudeDeg: 150, IsJie: false},
	{Index: 14, Name: "백로", Hanja: "白露", LongitudeDeg: 165, IsJie: true},
	{Index: 15, Name: "추분", Hanja: "秋分", LongitudeDeg: 180, IsJie: false},
	{Index: 16, Name: "한로", Hanja: "寒露", LongitudeDeg: 195, IsJie: true},
	{Index: 17, Name: "상강", Hanja: "霜降", LongitudeDeg: 210, IsJie: false},
	{Index: 18, Name: "입동", Hanja: "立冬", LongitudeDeg: 225, IsJie: true},
	{Index: 19, Name: "소설", Hanja: "小雪", LongitudeDeg: 240, IsJie: false},
	{Index: 20, Name: "대설", Hanja: "大雪", LongitudeDeg: 255, IsJie: true},
	{Index: 21, Name: "동지", Hanja: "冬至", LongitudeDeg: 270, IsJie: false},
	{Index: 22, Name: "소한", Hanja: "小寒", LongitudeDeg: 285, IsJie: true},
	{Index: 23, Name: "대한", Hanja: "大寒", LongitudeDeg: 300, IsJie: false},
}

// Terms returns the 24-term table (읽기 전용)
func Terms() [24]contracts.SolarTerm {
	return terms
}

// TermAt returns the term whose 15° segment contains the given
// ecliptic longitude, i.e. the most recently crossed term.
func TermAt(longitudeDeg float64) contracts.SolarTerm {
	idx := int(normalizeDeg(longitudeDeg-315.0) / 15.0)
	return terms[idx%24]
}
