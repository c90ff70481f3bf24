package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/saju/internal/api/handlers"
	"github.com/wonny/saju/internal/lunar"
	"github.com/wonny/saju/internal/pillars"
	"github.com/wonny/saju/pkg/config"
	"github.com/wonny/saju/pkg/logger"
	"github.com/wonny/saju/pkg/stdclock"
)

func testRouter(rateLimit config.RateLimitConfig) http.Handler {
	cfg := &config.Config{
		Port: "8085",
		Env:  "development",
		Chart: config.ChartConfig{
			Preset:        "standard",
			LongitudeDeg:  126.978,
			TzOffsetHours: 9.0,
			Zone:          "Asia/Seoul",
		},
		RateLimit: rateLimit,
	}

	log := logger.NewWithWriter(&bytes.Buffer{}, "error")
	provider := stdclock.NewProvider()
	composer := pillars.NewComposer(provider, lunar.NewConverter(), log)
	handler := handlers.NewSajuHandler(cfg, log, composer, provider)

	return NewRouter(handler, cfg, log)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRequestIDAssigned(t *testing.T) {
	router := testRouter(config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	router := testRouter(config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "test-id-123", rec.Header().Get("X-Request-ID"))
}

func TestChartRouteWiring(t *testing.T) {
	router := testRouter(config.RateLimitConfig{})

	body := `{"birth":"2000-01-01T18:00:00","zone":"Asia/Seoul"}`
	req := httptest.NewRequest(http.MethodPost, "/api/saju/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// GET은 라우팅되지 않는다
	req = httptest.NewRequest(http.MethodGet, "/api/saju/chart", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimitExceeded(t *testing.T) {
	router := testRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
