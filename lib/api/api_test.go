package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelglue/quadview/lib/config"
	"github.com/pixelglue/quadview/lib/stats"
)

func newTestApi(quit func()) *Api {
	if quit == nil {
		quit = func() {}
	}
	return New(&config.ApiCfg{Bind: "127.0.0.1:0"}, stats.New(), quit)
}

func TestGetStats(t *testing.T) {
	a := newTestApi(nil)
	a.Stats.Update(16 * time.Millisecond)
	a.Stats.Update(16 * time.Millisecond)

	rec := httptest.NewRecorder()
	a.getStats(rec, httptest.NewRequest("GET", "/api/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(2), got["frames"])
	assert.Contains(t, got, "fps")
	assert.Contains(t, got, "uptime")
}

func TestKillRequestsShutdown(t *testing.T) {
	requested := false
	a := newTestApi(func() { requested = true })

	rec := httptest.NewRecorder()
	a.suicide(rec, httptest.NewRequest("POST", "/api/kill", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\"ok\"\n", rec.Body.String())
	assert.True(t, requested)
}

func TestServeInBackgroundDisabled(t *testing.T) {
	assert.Nil(t, ServeInBackground(nil, stats.New(), func() {}))
	assert.Nil(t, ServeInBackground(&config.ApiCfg{}, stats.New(), func() {}))
}
