// Package handlers implements the HTTP handlers of the saju API.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wonny/saju/internal/analysis"
	"github.com/wonny/saju/internal/astro"
	"github.com/wonny/saju/internal/contracts"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

// birthLayouts are the accepted wall-clock formats, most specific first
var birthLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// SajuHandler handles the saju API endpoints
// ⭐ SSOT: 사주 API 핸들러는 이 구조체에서만
type SajuHandler struct {
	composer  *pillars.Composer
	tenGods   *analysis.TenGodsCalculator
	strength  *analysis.StrengthCalculator
	yongshen  *analysis.YongshenSelector
	relations *analysis.RelationsAnalyzer
	sinsal    *analysis.SinsalMatcher
	reporter  *astro.Reporter

	provider contracts.TimeProvider
	chartCfg config.ChartConfig
	logger   *logger.Logger
}

// NewSajuHandler creates a new saju handler with every engine wired
func NewSajuHandler(cfg *config.Config, log *logger.Logger, composer *pillars.Composer, provider contracts.TimeProvider) *SajuHandler {
	return &SajuHandler{
		composer:  composer,
		tenGods:   analysis.NewTenGodsCalculator(log),
		strength:  analysis.NewStrengthCalculator(log),
		yongshen:  analysis.NewYongshenSelector(log),
		relations: analysis.NewRelationsAnalyzer(log),
		sinsal:    analysis.NewSinsalMatcher(log),
		reporter:  astro.NewReporter(provider, log),
		provider:  provider,
		chartCfg:  cfg.Chart,
		logger:    log.Component("api"),
	}
}

// ChartRequest represents a chart computation request
type ChartRequest struct {
	Birth         string   `json:"birth"`                     // "2000-01-01T18:00:00"
	Zone          string   `json:"zone,omitempty"`            // IANA zone, 기본 설정값
	LongitudeDeg  *float64 `json:"longitude_deg,omitempty"`   // 기본 설정값
	TzOffsetHours *float64 `json:"tz_offset_hours,omitempty"` // nil이면 존에서 유도
	Preset        string   `json:"preset,omitempty"`          // standard | traditional
}

// Chart computes the four pillars for a birth instant
// POST /api/saju/chart
func (h *SajuHandler) Chart(w http.ResponseWriter, r *http.Request) {
	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Birth == "" {
		respondError(w, http.StatusBadRequest, "'birth' is required")
		return
	}

	instant, err := h.parseInstant(req.Birth, req.Zone)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid 'birth' instant (expected ISO date-time)")
		return
	}

	presetName := req.Preset
	if presetName == "" {
		presetName = h.chartCfg.Preset
	}
	preset, err := pillars.PresetByName(presetName)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid preset (valid: standard, traditional)")
		return
	}

	longitude := h.chartCfg.LongitudeDeg
	if req.LongitudeDeg != nil {
		longitude = *req.LongitudeDeg
	}

	fourPillars, err := h.composer.Compose(instant, pillars.Request{
		LongitudeDeg:  longitude,
		TzOffsetHours: req.TzOffsetHours,
		Preset:        preset,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to compose chart")
		respondError(w, http.StatusInternalServerError, "Failed to compose chart")
		return
	}

	respondJSON(w, http.StatusOK, fourPillars)
}

// AnalysisResponse bundles every analysis of one chart
type AnalysisResponse struct {
	Chart     contracts.Chart           `json:"chart"`
	TenGods   *contracts.TenGodsResult  `json:"ten_gods"`
	Strength  *contracts.StrengthResult `json:"strength"`
	Yongshen  *contracts.YongshenResult `json:"yongshen"`
	Relations *contracts.RelationsResult `json:"relations"`
	Sinsal    *contracts.SinsalResult   `json:"sinsal"`
}

// Analysis runs every analysis engine over four pillar strings
// POST /api/saju/analysis
func (h *SajuHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	var chart contracts.Chart
	if err := json.NewDecoder(r.Body).Decode(&chart); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := chart.Pillars(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid pillar symbols (expected 甲寅-style pairs)")
		return
	}

	tenGods, err := h.tenGods.Calculate(chart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to classify ten gods")
		respondError(w, http.StatusInternalServerError, "Failed to analyze chart")
		return
	}
	strength, err := h.strength.Calculate(chart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to evaluate strength")
		respondError(w, http.StatusInternalServerError, "Failed to analyze chart")
		return
	}
	yongshen, err := h.yongshen.Calculate(chart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to select yongshen")
		respondError(w, http.StatusInternalServerError, "Failed to analyze chart")
		return
	}
	relations, err := h.relations.Calculate(chart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze relations")
		respondError(w, http.StatusInternalServerError, "Failed to analyze chart")
		return
	}
	sinsal, err := h.sinsal.Calculate(chart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to match sinsal")
		respondError(w, http.StatusInternalServerError, "Failed to analyze chart")
		return
	}

	respondJSON(w, http.StatusOK, AnalysisResponse{
		Chart:     chart,
		TenGods:   tenGods,
		Strength:  strength,
		Yongshen:  yongshen,
		Relations: relations,
		Sinsal:    sinsal,
	})
}

// Terms reports the solar-term neighborhood of an instant
// GET /api/saju/terms?at=2000-01-01T18:00:00&zone=Asia/Seoul
func (h *SajuHandler) Terms(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		zone = h.chartCfg.Zone
	}

	var instant contracts.Instant
	if at := r.URL.Query().Get("at"); at != "" {
		parsed, err := h.parseInstant(at, zone)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'at' instant (expected ISO date-time)")
			return
		}
		instant = parsed
	} else {
		now, err := h.provider.Now(zone)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'zone'")
			return
		}
		instant = now
	}

	info, err := h.reporter.Analyze(instant)
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze solar terms")
		respondError(w, http.StatusInternalServerError, "Failed to analyze solar terms")
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// parseInstant reads a wall-clock string in an IANA zone
func (h *SajuHandler) parseInstant(value, zone string) (contracts.Instant, error) {
	if zone == "" {
		zone = h.chartCfg.Zone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, layout := range birthLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return stdclock.FromTime(t), nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
