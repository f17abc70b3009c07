package factory

import (
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/mocks"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/storage/memory"
	"github.com/mcoot/geoquiz/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockScheduler *mocks.TickingScheduler
	MockRandom    *mocks.MockRandom
}

// NewTestApp creates an App over the world catalog with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithFeed(catalog.WorldFeed())
}

// NewTestAppWithFeed creates an App over the given feed with mocked dependencies.
// It panics on an invalid feed.
func NewTestAppWithFeed(feed model.CatalogFeed) *TestApp {
	cat, err := catalog.New(feed)
	if err != nil {
		panic(err)
	}

	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockScheduler := mocks.NewTickingScheduler(mockClock)
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(memory.New(), cat, mockClock, mockScheduler, mockRandom, time.Hour, testutil.NopLogger())

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockScheduler: mockScheduler,
		MockRandom:    mockRandom,
	}
}
