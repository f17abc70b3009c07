package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
)

// MockScheduler is a mock implementation of Scheduler for testing.
// Tasks only run when Tick is called.
type MockScheduler struct {
	mu     sync.Mutex
	tasks  []*scheduledTask
	nextID int
}

type scheduledTask struct {
	id        int
	interval  time.Duration
	fn        func()
	cancelled bool
}

// Ensure MockScheduler implements Scheduler
var _ clock.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Every registers a task; it runs on each Tick until cancelled
func (s *MockScheduler) Every(interval time.Duration, fn func()) clock.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task := &scheduledTask{id: s.nextID, interval: interval, fn: fn}
	s.tasks = append(s.tasks, task)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		task.cancelled = true
	}
}

// Tick fires every active task once
func (s *MockScheduler) Tick() {
	for _, task := range s.activeTasks() {
		task.fn()
	}
}

// TickN fires every active task n times
func (s *MockScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// FireAll runs every registered task once, including cancelled ones.
// It simulates a tick that was already in flight when Cancel was called.
func (s *MockScheduler) FireAll() {
	s.mu.Lock()
	tasks := make([]*scheduledTask, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	for _, task := range tasks {
		task.fn()
	}
}

// ActiveCount returns the number of tasks that have not been cancelled
func (s *MockScheduler) ActiveCount() int {
	return len(s.activeTasks())
}

// TotalScheduled returns the number of tasks ever registered
func (s *MockScheduler) TotalScheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// LastInterval returns the interval of the most recently registered task
func (s *MockScheduler) LastInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return 0
	}
	return s.tasks[len(s.tasks)-1].interval
}

func (s *MockScheduler) activeTasks() []*scheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []*scheduledTask
	for _, task := range s.tasks {
		if !task.cancelled {
			active = append(active, task)
		}
	}
	return active
}
