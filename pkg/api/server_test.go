package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	launched []string
	failNext error
}

func (f *fakeLauncher) Launch(region string) (string, error) {
	if f.failNext != nil {
		return "", f.failNext
	}
	f.launched = append(f.launched, region)
	return "run-123", nil
}

func (f *fakeLauncher) Status(context.Context, string) (map[string]interface{}, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakeLauncher) CancelRun(string) bool { return false }

func testServer(launcher RunLauncher) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Regions: map[string]*config.Region{
		"minneapolis": {Slug: "minneapolis", Name: "Minneapolis"},
	}}
	return NewServer(cfg, nil, launcher, prometheus.NewRegistry())
}

func TestHandleTriggerRun(t *testing.T) {
	t.Run("launches a run for a known region", func(t *testing.T) {
		launcher := &fakeLauncher{}
		server := testServer(launcher)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs",
			strings.NewReader(`{"region": "minneapolis"}`))
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "run-123")
		assert.Equal(t, []string{"minneapolis"}, launcher.launched)
	})

	t.Run("unknown region 404s", func(t *testing.T) {
		server := testServer(&fakeLauncher{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs",
			strings.NewReader(`{"region": "mars"}`))
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing region 400s", func(t *testing.T) {
		server := testServer(&fakeLauncher{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader(`{}`))
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("busy region conflicts", func(t *testing.T) {
		launcher := &fakeLauncher{failNext: fmt.Errorf("region minneapolis already has a run in progress")}
		server := testServer(launcher)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs",
			strings.NewReader(`{"region": "minneapolis"}`))
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestToSignalView_FuzzesCoordinates(t *testing.T) {
	raw := &graph.Signal{
		ID:          uuid.New(),
		Type:        models.NodeGathering,
		Title:       "Support meeting",
		Sensitivity: models.SensitivitySensitive,
		Location:    &models.GeoPoint{Lat: 44.97782345, Lng: -93.26501234, Precision: models.PrecisionExact},
	}

	view := toSignalView(raw)

	require.NotNil(t, view.Lat)
	require.NotNil(t, view.Lng)
	// Sensitive signals snap to the ~11km grid; the raw coordinate must not
	// survive serialization.
	assert.InDelta(t, 45.0, *view.Lat, 0.0001)
	assert.InDelta(t, -93.3, *view.Lng, 0.0001)
	assert.NotEqual(t, raw.Location.Lat, *view.Lat)
}
