package stats

import (
	"time"
)

type Stats struct {
	Frames    uint64  `json:"frames"`
	FPS       uint64  `json:"fps"`
	FrameTime float64 `json:"frame_time_ms"`
	Uptime    float64 `json:"uptime"`
	WsClients int     `json:"ws_clients"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	return s
}

// Update is called once per rendered frame with the time since the
// previous one.
func (s *Stats) Update(dt time.Duration) {
	s.Frames++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.FrameTime = float64(dt.Nanoseconds()) / 1e6
	s.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}
