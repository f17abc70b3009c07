package session

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
	"github.com/mcoot/geoquiz/internal/dependencies/random"
	"github.com/mcoot/geoquiz/internal/model"
)

const (
	// IDLength is the length of generated session ids
	IDLength = 12
	// IDAlphabet is the characters used in session ids
	IDAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"
)

// CreatedHook is called with every session the manager creates,
// before it is returned to the caller
type CreatedHook func(*Session)

// RemovedHook is called with the id of every session the manager forgets,
// after the session has been closed
type RemovedHook func(model.SessionID)

// Manager owns the live sessions of a server process
type Manager struct {
	catalog   Catalog
	resolver  Resolver
	scheduler clock.Scheduler
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
	idleTTL   time.Duration

	mu       sync.RWMutex
	sessions map[model.SessionID]*Session
	hooks    []CreatedHook
	removed  []RemovedHook
}

// NewManager creates a new session Manager
func NewManager(
	catalog Catalog,
	resolver Resolver,
	scheduler clock.Scheduler,
	clock clock.Clock,
	random random.Random,
	idleTTL time.Duration,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Manager{
		catalog:   catalog,
		resolver:  resolver,
		scheduler: scheduler,
		clock:     clock,
		random:    random,
		logger:    logger.With(slog.String("component", "session")),
		idleTTL:   idleTTL,
		sessions:  make(map[model.SessionID]*Session),
	}
}

// OnCreated registers a hook run for every new session
func (m *Manager) OnCreated(hook CreatedHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// OnRemoved registers a hook run for every removed session
func (m *Manager) OnRemoved(hook RemovedHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, hook)
}

// Create makes a new idle session. If cfg is non-nil the session is started with it.
func (m *Manager) Create(cfg *model.SessionConfig) *Session {
	m.mu.Lock()

	// Generate unique session id
	var id model.SessionID
	for {
		id = model.SessionID(m.random.String(IDLength, IDAlphabet))
		if _, exists := m.sessions[id]; !exists {
			break
		}
	}

	sess := New(m.catalog, m.resolver, Options{
		ID:        id,
		Scheduler: m.scheduler,
		Clock:     m.clock,
		Logger:    m.logger,
	})
	m.sessions[id] = sess
	hooks := append([]CreatedHook(nil), m.hooks...)
	m.mu.Unlock()

	for _, hook := range hooks {
		hook(sess)
	}

	m.logger.Info("session created", slog.String("session_id", string(id)))

	if cfg != nil {
		sess.Start(*cfg)
	}
	return sess
}

// Get retrieves a session by id
func (m *Manager) Get(id model.SessionID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

// Restart starts a fresh game on an existing session, cancelling its old timer
func (m *Manager) Restart(id model.SessionID, cfg model.SessionConfig) (*Session, error) {
	sess, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Start(cfg)
	return sess, nil
}

// Remove stops and forgets a session
func (m *Manager) Remove(id model.SessionID) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return model.ErrSessionNotFound
	}
	delete(m.sessions, id)
	hooks := append([]RemovedHook(nil), m.removed...)
	m.mu.Unlock()

	sess.Close()
	for _, hook := range hooks {
		hook(id)
	}
	m.logger.Info("session removed", slog.String("session_id", string(id)))
	return nil
}

// CleanupIdle removes sessions that are not playing and have been untouched
// for longer than the idle TTL. Returns the number removed.
func (m *Manager) CleanupIdle(now time.Time) int {
	if m.idleTTL <= 0 {
		return 0
	}

	m.mu.Lock()
	var stale []*Session
	for id, sess := range m.sessions {
		if sess.Status() == model.SessionStatusPlaying {
			continue
		}
		if now.Sub(sess.LastActivity()) > m.idleTTL {
			stale = append(stale, sess)
			delete(m.sessions, id)
		}
	}
	hooks := append([]RemovedHook(nil), m.removed...)
	m.mu.Unlock()

	for _, sess := range stale {
		sess.Close()
		for _, hook := range hooks {
			hook(sess.ID())
		}
	}
	if len(stale) > 0 {
		m.logger.Info("idle sessions removed", slog.Int("count", len(stale)))
	}
	return len(stale)
}

// RunCleanup calls CleanupIdle every interval until the returned CancelFunc is called
func (m *Manager) RunCleanup(interval time.Duration) clock.CancelFunc {
	return m.scheduler.Every(interval, func() {
		m.CleanupIdle(m.clock.Now())
	})
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
