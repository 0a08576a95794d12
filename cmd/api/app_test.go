package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/assessment"
	"github.com/AjayAntoIsDev/SafeRoute/internal/config"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/risk"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssessor struct {
	calls  int
	coords types.Coords
	err    error
}

func (f *fakeAssessor) Assess(_ context.Context, coords types.Coords) (*types.Prediction, error) {
	f.calls++
	f.coords = coords
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	w := types.FallbackWeather(time.Date(2025, time.July, 3, 9, 30, 0, 0, time.UTC))
	g := types.GeographicProfile{
		ElevationM:  14,
		Terrain:     types.TerrainCoastalPlain,
		SeismicZone: 3,
		ClimateZone: types.ClimateTropicalWet,
		Source:      types.SourceLive,
	}
	return &types.Prediction{
		GeographicData: g,
		LocationInfo:   types.UnknownLocation(),
		Analysis:       risk.FallbackAnalysis(w, g, "LLM API key not configured"),
		AnalysisSource: types.AnalysisSourceRuleBased,
	}, nil
}

func newTestApp(t *testing.T, assessor Assessor) *App {
	t.Helper()
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	metrics.AssessmentCompleted(types.AnalysisSourceRuleBased, 0)

	cfg := &config.Config{Server: config.ServerConfig{Port: 8000, GinMode: gin.TestMode}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(cfg, logger, assessor, registry)
}

func postPredict(app *App, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandlePredict_Success(t *testing.T) {
	assessor := &fakeAssessor{}
	app := newTestApp(t, assessor)

	w := postPredict(app, `{"latitude": 19.076, "longitude": 72.8777}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, types.AnalysisSourceRuleBased, w.Header().Get(analysisSourceHeader))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, types.Coords{Latitude: 19.076, Longitude: 72.8777}, assessor.coords)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 3)
	assert.Contains(t, body, "geographic_data")
	assert.Contains(t, body, "location_info")
	assert.Contains(t, body, "analysis")

	var analysis map[string]types.ThreatAssessment
	require.NoError(t, json.Unmarshal(body["analysis"], &analysis))
	for _, category := range types.Categories() {
		assert.Contains(t, analysis, category)
	}
	assert.Equal(t, []string{"cyclone"}, analysis[types.CategoryConclusion].PrimaryThreats)
}

func TestHandlePredict_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"latitude": `},
		{name: "missing longitude", body: `{"latitude": 19.076}`},
		{name: "string latitude", body: `{"latitude": "north", "longitude": 72.8}`},
		{name: "outside India", body: `{"latitude": 51.5, "longitude": -0.12}`},
		{name: "longitude too far east", body: `{"latitude": 20, "longitude": 97.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &fakeAssessor{})

			w := postPredict(app, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Empty(t, w.Header().Get(analysisSourceHeader))
		})
	}
}

func TestHandlePredict_InternalError(t *testing.T) {
	assessor := &fakeAssessor{err: fmt.Errorf("%w: weather panicked: boom", assessment.ErrInternal)}
	app := newTestApp(t, assessor)

	w := postPredict(app, `{"latitude": 19.076, "longitude": 72.8777}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "failed to assess disaster risk"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: `{"message": "Welcome to SafeRoute API"}`},
		{path: "/health", want: `{"status": "healthy", "service": "SafeRoute API"}`},
		{path: "/ping", want: `{"message": "pong"}`},
	}

	app := newTestApp(t, &fakeAssessor{})
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			app.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	app := newTestApp(t, &fakeAssessor{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(requestIDHeader))
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	app := newTestApp(t, &fakeAssessor{})

	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "https://saferoute.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, &fakeAssessor{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `saferoute_assessments_total{source="rule_based"} 1`)
}
