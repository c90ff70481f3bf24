package contracts

import (
	"encoding/json"
	"fmt"

	"github.com/wonny/saju/internal/ganji"
)

// TenGod is the ten-way classification of a stem against the day master
// ⭐ SSOT: 십신 분류 열거형
type TenGod int

const (
	BiGyeon  TenGod = iota // 비견
	GeopJae                // 겁재
	SikSin                 // 식신
	SangGwan               // 상관
	PyeonJae               // 편재
	JeongJae               // 정재
	PyeonGwan              // 편관
	JeongGwan              // 정관
	PyeonIn                // 편인
	JeongIn                // 정인
)

// tenGodNames maps TenGod to its Korean name
var tenGodNames = [10]string{
	"비견", "겁재", "식신", "상관", "편재",
	"정재", "편관", "정관", "편인", "정인",
}

// String returns the Korean name of the ten god
func (g TenGod) String() string {
	if g < BiGyeon || g > JeongIn {
		return fmt.Sprintf("TenGod(%d)", int(g))
	}
	return tenGodNames[g]
}

// MarshalJSON serializes the ten god as its Korean name
func (g TenGod) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// IsHelpful reports whether the ten god supports the day master
// (비겁 + 인성)
func (g TenGod) IsHelpful() bool {
	switch g {
	case BiGyeon, GeopJae, PyeonIn, JeongIn:
		return true
	default:
		return false
	}
}

// StemTenGod is the classification of one visible stem
type StemTenGod struct {
	Position PillarPosition `json:"position"`
	Stem     ganji.Stem     `json:"stem"`
	God      TenGod         `json:"god"`
}

// BranchTenGod is the classification of one branch via its primary
// hidden stem (본기)
type BranchTenGod struct {
	Position    PillarPosition `json:"position"`
	Branch      ganji.Branch   `json:"branch"`
	PrimaryStem ganji.Stem     `json:"primary_stem"`
	God         TenGod         `json:"god"`
}

// TenGodsResult is the full ten-god classification of a chart
type TenGodsResult struct {
	DayMaster ganji.Stem      `json:"day_master"`
	Stems     [4]StemTenGod   `json:"stems"`
	Branches  [4]BranchTenGod `json:"branches"`
}

// StrengthLevel is the 9-way band of day-master strength
type StrengthLevel int

const (
	GeukYak        StrengthLevel = iota // 극약
	TaeYak                              // 태약
	SinYak                              // 신약
	JunghwaSinYak                       // 중화신약
	Junghwa                             // 중화
	JunghwaSinGang                      // 중화신강
	SinGang                             // 신강
	TaeGang                             // 태강
	GeukWang                            // 극왕
)

// strengthLevelNames maps StrengthLevel to its Korean name
var strengthLevelNames = [9]string{
	"극약", "태약", "신약", "중화신약", "중화",
	"중화신강", "신강", "태강", "극왕",
}

// String returns the Korean name of the level
func (l StrengthLevel) String() string {
	if l < GeukYak || l > GeukWang {
		return fmt.Sprintf("StrengthLevel(%d)", int(l))
	}
	return strengthLevelNames[l]
}

// MarshalJSON serializes the level as its Korean name
func (l StrengthLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// IsStrong reports whether the level is one of the four strong bands
func (l StrengthLevel) IsStrong() bool {
	return l >= JunghwaSinGang
}

// StrengthFactors exposes every sub-score behind the final strength score.
// DeukJi와 DeukSe는 계산되어 반환되지만 점수에는 반영되지 않는다
// (원 시스템의 동작을 그대로 보존).
type StrengthFactors struct {
	DeukRyeong       float64 `json:"deukryeong"`        // 득령: 계절 배수 [0,1]
	TongGeun         float64 `json:"tonggeun"`          // 통근: 지장간 뿌리 합
	TransparentBonus float64 `json:"transparent_bonus"` // 투간 보너스
	HelperStemCount  int     `json:"helper_stem_count"` // 천간 중 인비 개수
	HelpCount        int     `json:"help_count"`        // 전체 돕는 글자 수
	WeakenCount      int     `json:"weaken_count"`      // 전체 설기/극 글자 수
	DeukJi           bool    `json:"deukji"`            // 일지에 뿌리 존재 여부
	DeukSe           int     `json:"deukse"`            // 세력 슬롯 수
}

// StrengthResult is the day-master strength evaluation
type StrengthResult struct {
	DayMaster ganji.Stem      `json:"day_master"`
	Score     float64         `json:"score"`
	Level     StrengthLevel   `json:"level"`
	Factors   StrengthFactors `json:"factors"`
}

// YongshenMethod names the selection method used
type YongshenMethod string

const (
	MethodEokbu     YongshenMethod = "억부" // balance
	MethodJonggyeok YongshenMethod = "종격" // follow the dominant element
)

// ElementPair is a primary/secondary useful-element pair
type ElementPair struct {
	Primary   ganji.Element `json:"primary"`
	Secondary ganji.Element `json:"secondary"`
}

// YongshenResult is the useful-element selection
type YongshenResult struct {
	Method    YongshenMethod `json:"method"`
	Primary   ganji.Element  `json:"primary"`
	Secondary ganji.Element  `json:"secondary"`

	// 종격일 때만: 따르는 오행과 억부 기준 대안
	FollowedElement    *ganji.Element `json:"followed_element,omitempty"`
	AlternativeBalance *ElementPair   `json:"alternative_balance,omitempty"`

	// 조후 조정 제안 (억부 결과와 다를 때만, 구속력 없음)
	JohuAdjustment *ElementPair `json:"johu_adjustment,omitempty"`

	Strength StrengthResult `json:"strength"`
}

// RelationType is the closed set of stem/branch relation kinds
type RelationType int

const (
	StemCombination        RelationType = iota // 천간합
	SixCombination                             // 육합
	TripleCombination                          // 삼합
	DirectionalCombination                     // 방합
	Clash                                      // 충
	Harm                                       // 해
	Punishment                                 // 형
	Destruction                                // 파
)

// relationTypeNames maps RelationType to its Korean name
var relationTypeNames = [8]string{
	"천간합", "육합", "삼합", "방합", "충", "해", "형", "파",
}

// String returns the Korean name of the relation type
func (r RelationType) String() string {
	if r < StemCombination || r > Destruction {
		return fmt.Sprintf("RelationType(%d)", int(r))
	}
	return relationTypeNames[r]
}

// MarshalJSON serializes the relation type as its Korean name
func (r RelationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// TransformStatus is the transformation state of a combination
type TransformStatus int

const (
	StatusCombined       TransformStatus = iota // 합
	StatusHalfCombined                          // 반합
	StatusTransformed                           // 화
	StatusNotTransformed                        // 불화
)

// transformStatusNames maps TransformStatus to its Korean name
var transformStatusNames = [4]string{"합", "반합", "화", "불화"}

// String returns the Korean name of the status
func (s TransformStatus) String() string {
	if s < StatusCombined || s > StatusNotTransformed {
		return fmt.Sprintf("TransformStatus(%d)", int(s))
	}
	return transformStatusNames[s]
}

// MarshalJSON serializes the status as its Korean name
func (s TransformStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Relation is one detected stem/branch relation
type Relation struct {
	Type      RelationType     `json:"type"`
	Symbols   []string         `json:"symbols"`
	Positions []PillarPosition `json:"positions"`

	// Combinations only
	ResultElement *ganji.Element  `json:"result_element,omitempty"`
	IsComplete    bool            `json:"is_complete,omitempty"`
	Status        TransformStatus `json:"status,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

// RelationsResult is the full relation analysis of a chart
type RelationsResult struct {
	Relations []Relation `json:"relations"`
}

// OfType returns the relations of one type, in detection order
func (r *RelationsResult) OfType(t RelationType) []Relation {
	var out []Relation
	for _, rel := range r.Relations {
		if rel.Type == t {
			out = append(out, rel)
		}
	}
	return out
}

// SinsalKind is the closed set of 16 supported markers
type SinsalKind int

const (
	Jisal     SinsalKind = iota // 지살
	Geopsal                     // 겁살
	Jaesal                      // 재살
	Cheonsal                    // 천살
	Wolsal                      // 월살
	Mangsin                     // 망신살
	Jangseong                   // 장성살
	Banan                       // 반안살
	Yeokma                      // 역마살
	Yukhae                      // 육해살
	Hwagae                      // 화개살
	Dohwa                       // 도화살
	Cheondeok                   // 천덕귀인
	Woldeok                     // 월덕귀인
	Cheoneul                    // 천을귀인
	Yangin                      // 양인살
)

// sinsalNames maps SinsalKind to its Korean name
var sinsalNames = [16]string{
	"지살", "겁살", "재살", "천살", "월살", "망신살",
	"장성살", "반안살", "역마살", "육해살", "화개살", "도화살",
	"천덕귀인", "월덕귀인", "천을귀인", "양인살",
}

// String returns the Korean name of the sinsal
func (k SinsalKind) String() string {
	if k < Jisal || k > Yangin {
		return fmt.Sprintf("SinsalKind(%d)", int(k))
	}
	return sinsalNames[k]
}

// MarshalJSON serializes the sinsal kind as its Korean name
func (k SinsalKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// SinsalMatch is one marker hit. The (Kind, Position) pair is unique
// within a result set.
type SinsalMatch struct {
	Kind     SinsalKind     `json:"kind"`
	Position PillarPosition `json:"position"`
	Base     string         `json:"base"`   // 기준 글자 (년지/일지/월지/일간/년간)
	Target   ganji.Branch   `json:"target"` // 적중한 지지
}

// SinsalResult is the full sinsal analysis of a chart
type SinsalResult struct {
	Matches []SinsalMatch `json:"matches"`
}
