package mocks

import (
	"sync"

	"github.com/mcoot/geoquiz/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Queued results are consumed in order; when a queue is empty a
// deterministic fallback is returned.
type MockRandom struct {
	mu sync.Mutex

	intnResults   []int
	stringResults []string
	stringCounter int
	permResults   [][]int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.intnResults) == 0 {
		return 0
	}
	result := r.intnResults[0]
	r.intnResults = r.intnResults[1:]
	return result
}

// String returns the next queued result. With an empty queue it returns a
// unique placeholder of the requested length so generated ids never collide.
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stringResults) > 0 {
		result := r.stringResults[0]
		r.stringResults = r.stringResults[1:]
		return result
	}
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	r.stringCounter++
	out := make([]byte, length)
	n := r.stringCounter
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[n%len(alphabet)]
		n /= len(alphabet)
	}
	return string(out)
}

// Perm returns the next queued permutation, or the identity permutation
func (r *MockRandom) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.permResults) > 0 {
		result := r.permResults[0]
		r.permResults = r.permResults[1:]
		return result
	}
	perm := make([]int, max(n, 0))
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnResults = append(r.intnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stringResults = append(r.stringResults, values...)
}

// QueuePerm adds a permutation to the Perm result queue
func (r *MockRandom) QueuePerm(perm ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.permResults = append(r.permResults, perm)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnResults = nil
	r.stringResults = nil
	r.stringCounter = 0
	r.permResults = nil
}
