package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFrames(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.Update(16 * time.Millisecond)
	}
	assert.Equal(t, uint64(3), s.Frames)
	assert.InDelta(t, 16.0, s.FrameTime, 0.001)
	assert.Greater(t, s.Uptime, 0.0)
}

func TestFPSWindow(t *testing.T) {
	s := New()
	s.frameTimer = time.Now()

	// still inside the one second window: FPS not published yet
	s.Update(0)
	assert.Equal(t, uint64(0), s.FPS)

	// window elapsed: the counter becomes the published FPS
	s.frameTimer = time.Now().Add(-2 * time.Second)
	s.Update(0)
	assert.Equal(t, uint64(2), s.FPS)
	assert.Equal(t, uint64(0), s.frameCounter)
}
