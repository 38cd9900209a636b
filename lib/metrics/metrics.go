package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadview_frames_rendered_total",
		Help: "Total number of frames rendered and presented",
	})
	DrawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadview_draw_calls_total",
		Help: "Total number of indexed draw calls issued",
	})
	ShaderRebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadview_shader_rebuilds_total",
		Help: "Total number of shader program rebuilds triggered by file changes",
	}, []string{"result"})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
