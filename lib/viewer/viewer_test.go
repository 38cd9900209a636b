package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelglue/quadview/lib/config"
)

func TestRequestShutdownIsMonotonic(t *testing.T) {
	v := New(config.Default())
	assert.False(t, v.ShutdownRequested)

	v.RequestShutdown()
	assert.True(t, v.ShutdownRequested)

	// repeated requests never clear the flag and only say goodbye once
	v.RequestShutdown()
	v.RequestShutdown()
	assert.True(t, v.ShutdownRequested)
	assert.True(t, v.saidGoodbye)
}

func TestNewParsesClearColour(t *testing.T) {
	cfg := config.Default()
	cfg.ClearColour = "#FF000080"

	v := New(cfg)
	assert.Equal(t, float32(1), v.clearColour.R)
	assert.Equal(t, float32(0), v.clearColour.G)
	assert.Equal(t, float32(0), v.clearColour.B)
	assert.InDelta(t, 0.5, v.clearColour.A, 0.01)
}
