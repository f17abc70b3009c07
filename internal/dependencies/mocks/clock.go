package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// It is safe for use from scheduler callbacks.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// TickingScheduler couples a MockScheduler with a MockClock so each tick
// also advances the clock by the task interval
type TickingScheduler struct {
	*MockScheduler
	Clock *MockClock
}

// NewTickingScheduler creates a TickingScheduler over the given clock
func NewTickingScheduler(c *MockClock) *TickingScheduler {
	return &TickingScheduler{MockScheduler: NewMockScheduler(), Clock: c}
}

// Tick advances the clock by one interval, then fires every active task
func (s *TickingScheduler) Tick() {
	if d := s.LastInterval(); d > 0 {
		s.Clock.Advance(d)
	}
	s.MockScheduler.Tick()
}

// TickN ticks n times
func (s *TickingScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}
