package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimerFirstCallIsZero(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())
}

func TestDeltaTimerMeasuresElapsedTime(t *testing.T) {
	var d DeltaTimer
	d.Set(time.Now().Add(-50 * time.Millisecond))

	dt := d.Next()
	assert.GreaterOrEqual(t, dt, 50*time.Millisecond)
	assert.Less(t, dt, 5*time.Second)

	// the timer advanced, so the next delta starts from now
	assert.Less(t, d.Next(), 50*time.Millisecond)
}
