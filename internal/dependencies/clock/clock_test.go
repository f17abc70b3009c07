package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	before := time.Now()
	now := New().Now()
	assert.False(t, now.Before(before))
}

func TestTickerSchedulerRunsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	cancel := NewScheduler().Every(5*time.Millisecond, func() {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	cancel() // safe to repeat

	// One in-flight tick may still land after cancel
	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), stopped+1)
}
