package clock

import (
	"sync"
	"time"
)

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// CancelFunc stops a scheduled task. It is safe to call more than once.
type CancelFunc func()

// Scheduler runs repeating tasks and can be mocked for testing
type Scheduler interface {
	// Every calls fn once per interval until the returned CancelFunc is called
	Every(interval time.Duration, fn func()) CancelFunc
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// TickerScheduler implements Scheduler with a time.Ticker per task
type TickerScheduler struct{}

// NewScheduler creates a new TickerScheduler
func NewScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every starts a goroutine that calls fn on each tick.
// fn runs on the scheduler goroutine, never concurrently with itself.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
