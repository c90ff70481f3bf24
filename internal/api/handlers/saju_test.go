package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/lunar"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

func testHandler() *SajuHandler {
	cfg := &config.Config{
		Port: "8085",
		Env:  "development",
		Chart: config.ChartConfig{
			Preset:        "standard",
			LongitudeDeg:  126.978,
			TzOffsetHours: 9.0,
			Zone:          "Asia/Seoul",
		},
	}

	log := logger.NewWithWriter(&bytes.Buffer{}, "error")
	provider := stdclock.NewProvider()
	composer := pillars.NewComposer(provider, lunar.NewConverter(), log)

	return NewSajuHandler(cfg, log, composer, provider)
}

func TestChartEndpoint(t *testing.T) {
	h := testHandler()

	body := `{"birth":"2000-01-01T18:00:00","zone":"Asia/Seoul","longitude_deg":126.9,"preset":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/api/saju/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Chart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Year           string `json:"year"`
		Month          string `json:"month"`
		Day            string `json:"day"`
		Hour           string `json:"hour"`
		SolarYearUsed  int    `json:"solar_year_used"`
		BoundaryPreset string `json:"boundary_preset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "己卯", resp.Year)
	assert.Equal(t, "丙子", resp.Month)
	assert.Equal(t, "戊午", resp.Day)
	assert.Equal(t, "辛酉", resp.Hour)
	assert.Equal(t, 1999, resp.SolarYearUsed)
	assert.Equal(t, "standard", resp.BoundaryPreset)
}

func TestChartEndpointValidation(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name string
		body string
	}{
		{"missing birth", `{"zone":"Asia/Seoul"}`},
		{"bad instant", `{"birth":"not-a-date"}`},
		{"bad preset", `{"birth":"2000-01-01T18:00:00","preset":"lunar"}`},
		{"bad body", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/saju/chart", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Chart(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	h := testHandler()

	body := `{"year":"己卯","month":"丙子","day":"戊午","hour":"辛酉"}`
	req := httptest.NewRequest(http.MethodPost, "/api/saju/analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TenGods struct {
			DayMaster string `json:"day_master"`
		} `json:"ten_gods"`
		Strength struct {
			Level string  `json:"level"`
			Score float64 `json:"score"`
		} `json:"strength"`
		Yongshen struct {
			Method  string `json:"method"`
			Primary string `json:"primary"`
		} `json:"yongshen"`
		Relations struct {
			Relations []json.RawMessage `json:"relations"`
		} `json:"relations"`
		Sinsal struct {
			Matches []json.RawMessage `json:"matches"`
		} `json:"sinsal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "戊", resp.TenGods.DayMaster)
	assert.Equal(t, "신약", resp.Strength.Level)
	assert.Equal(t, "억부", resp.Yongshen.Method)
	assert.Equal(t, "화", resp.Yongshen.Primary)
	assert.NotEmpty(t, resp.Relations.Relations)
	assert.NotEmpty(t, resp.Sinsal.Matches)
}

func TestAnalysisEndpointInvalidSymbols(t *testing.T) {
	h := testHandler()

	body := `{"year":"XX","month":"丙子","day":"戊午","hour":"辛酉"}`
	req := httptest.NewRequest(http.MethodPost, "/api/saju/analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTermsEndpoint(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/saju/terms?at=2000-01-01T18:00:00&zone=Asia/Seoul", nil)
	rec := httptest.NewRecorder()

	h.Terms(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Current struct {
			Term struct {
				Name string `json:"name"`
			} `json:"term"`
		} `json:"current"`
		Next struct {
			Term struct {
				Name string `json:"name"`
			} `json:"term"`
		} `json:"next"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "동지", resp.Current.Term.Name)
	assert.Equal(t, "소한", resp.Next.Term.Name)
}

func TestTermsEndpointBadInstant(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/saju/terms?at=yesterday", nil)
	rec := httptest.NewRecorder()

	h.Terms(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
