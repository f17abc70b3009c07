package session

import (
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
	"github.com/mcoot/geoquiz/internal/model"
)

const (
	// TickInterval is how often the session timer fires
	TickInterval = time.Second

	// maxTimeLimitSeconds caps configured time limits
	maxTimeLimitSeconds = math.MaxInt32
)

// Catalog is the subset of the catalog a session reads
type Catalog interface {
	Len() int
	Contains(id model.EntityID) bool
	Region(id model.EntityID) string
}

// Resolver decides whether a guess names an entity
type Resolver interface {
	CheckAnswer(id model.EntityID, raw string) bool
}

// Options configures a Session. Zero values fall back to real implementations.
type Options struct {
	ID        model.SessionID
	Scheduler clock.Scheduler
	Clock     clock.Clock
	Logger    *slog.Logger
}

// Session is a single quiz game: idle -> playing -> won | lost.
// Mutators never fail; calls that make no sense in the current state are ignored.
// Listeners run synchronously before the mutator returns and must not call
// mutators of the same session.
type Session struct {
	id        model.SessionID
	catalog   Catalog
	resolver  Resolver
	scheduler clock.Scheduler
	clock     clock.Clock
	logger    *slog.Logger

	mu           sync.Mutex
	status       model.SessionStatus
	lives        int
	maxLives     int
	correctCount int
	guessed      map[model.EntityID]struct{}
	selected     *model.EntityID
	elapsed      int
	timeLimit    int
	endReason    model.EndReason
	startedAt    time.Time
	endedAt      time.Time
	lastActivity time.Time
	cancelTimer  clock.CancelFunc
	generation   uint64
	pending      []model.Event

	dispatchMu sync.Mutex

	listenersMu  sync.Mutex
	listeners    []listenerEntry
	nextListener int
}

type listenerEntry struct {
	id int
	fn model.Listener
}

// New creates an idle session over a catalog and resolver
func New(catalog Catalog, resolver Resolver, opts Options) *Session {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.NewScheduler()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Session{
		id:           opts.ID,
		catalog:      catalog,
		resolver:     resolver,
		scheduler:    opts.Scheduler,
		clock:        opts.Clock,
		logger:       opts.Logger.With(slog.String("session_id", string(opts.ID))),
		status:       model.SessionStatusIdle,
		guessed:      make(map[model.EntityID]struct{}),
		lastActivity: opts.Clock.Now(),
	}
}

// ID returns the session identifier
func (s *Session) ID() model.SessionID {
	return s.id
}

// Subscribe registers a listener for session events.
// The returned function removes it and is safe to call more than once.
func (s *Session) Subscribe(fn model.Listener) func() {
	s.listenersMu.Lock()
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(e listenerEntry) bool {
				return e.id == id
			})
		})
	}
}

// Start resets the session and begins a new game.
// Any timer from a previous game is cancelled before the new one is scheduled.
func (s *Session) Start(cfg model.SessionConfig) {
	s.mu.Lock()

	s.stopTimerLocked()

	maxLives, timeLimit := resolveConfig(cfg)
	now := s.clock.Now()

	s.status = model.SessionStatusPlaying
	s.lives = maxLives
	s.maxLives = maxLives
	s.correctCount = 0
	s.guessed = make(map[model.EntityID]struct{})
	s.selected = nil
	s.elapsed = 0
	s.timeLimit = timeLimit
	s.endReason = ""
	s.startedAt = now
	s.endedAt = time.Time{}
	s.lastActivity = now

	gen := s.generation
	s.cancelTimer = s.scheduler.Every(TickInterval, func() { s.tick(gen) })

	s.emitLocked(model.EventGameStarted, model.GameStartedPayload{
		MaxLives:         maxLives,
		TotalEntities:    s.catalog.Len(),
		TimeLimitSeconds: timeLimit,
	})

	s.logger.Info("session started",
		slog.Int("max_lives", maxLives),
		slog.Int("time_limit_seconds", timeLimit),
		slog.Int("total_entities", s.catalog.Len()),
	)

	s.mu.Unlock()
	s.dispatch()
}

// SelectEntity marks an entity as awaiting a guess.
// Ignored unless playing, the id is in the catalog and not yet guessed.
func (s *Session) SelectEntity(id model.EntityID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.SessionStatusPlaying || !s.catalog.Contains(id) {
		return
	}
	if _, done := s.guessed[id]; done {
		return
	}

	s.selected = &id
	s.lastActivity = s.clock.Now()
}

// SubmitGuess checks raw against the selected entity
func (s *Session) SubmitGuess(raw string) model.GuessResult {
	s.mu.Lock()

	if s.status != model.SessionStatusPlaying || s.selected == nil {
		s.mu.Unlock()
		return model.GuessResult{Outcome: model.GuessNoSelection}
	}

	id := *s.selected
	s.lastActivity = s.clock.Now()

	var result model.GuessResult
	if s.resolver.CheckAnswer(id, raw) {
		result = s.acceptLocked(id)
	} else {
		result = s.rejectLocked(id)
	}

	s.mu.Unlock()
	s.dispatch()
	return result
}

func (s *Session) acceptLocked(id model.EntityID) model.GuessResult {
	region := s.catalog.Region(id)
	total := s.catalog.Len()

	s.guessed[id] = struct{}{}
	s.correctCount++
	s.selected = nil

	s.emitLocked(model.EventCorrectGuess, model.CorrectGuessPayload{
		EntityID:      id,
		Region:        region,
		CorrectCount:  s.correctCount,
		TotalEntities: total,
	})

	s.logger.Debug("correct guess",
		slog.Int("entity_id", int(id)),
		slog.Int("correct_count", s.correctCount),
	)

	if s.correctCount >= total {
		s.endLocked(model.GameResultWon, model.EndReasonCompleted)
	}

	return model.GuessResult{Outcome: model.GuessCorrect, EntityID: id, Region: region}
}

func (s *Session) rejectLocked(id model.EntityID) model.GuessResult {
	bounded := s.maxLives != model.UnlimitedLives
	if bounded {
		s.lives--
	}

	s.emitLocked(model.EventWrongGuess, model.WrongGuessPayload{
		EntityID:       id,
		LivesRemaining: s.lives,
	})

	if bounded {
		s.emitLocked(model.EventLifeLost, model.LifeLostPayload{
			LivesRemaining: s.lives,
			MaxLives:       s.maxLives,
		})
	}

	s.logger.Debug("wrong guess",
		slog.Int("entity_id", int(id)),
		slog.Int("lives_remaining", s.lives),
	)

	if bounded && s.lives <= 0 {
		s.endLocked(model.GameResultLost, model.EndReasonLivesExhausted)
	}

	return model.GuessResult{Outcome: model.GuessIncorrect, EntityID: id, LivesRemaining: s.lives}
}

// GiveUp ends a game in progress as lost
func (s *Session) GiveUp() {
	s.mu.Lock()
	if s.status != model.SessionStatusPlaying {
		s.mu.Unlock()
		return
	}
	s.lastActivity = s.clock.Now()
	s.endLocked(model.GameResultLost, model.EndReasonGaveUp)
	s.mu.Unlock()
	s.dispatch()
}

// Close stops the timer without emitting events. The session keeps its state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

// tick runs on the scheduler. Ticks from an older timer generation, or that
// arrive after the game ended, are dropped even if cancellation raced them.
func (s *Session) tick(gen uint64) {
	s.mu.Lock()

	if gen != s.generation || s.status != model.SessionStatusPlaying {
		s.mu.Unlock()
		return
	}

	s.elapsed++
	s.emitLocked(model.EventTimerTick, model.TimerTickPayload{
		ElapsedSeconds:   s.elapsed,
		TimeLimitSeconds: s.timeLimit,
	})

	if s.timeLimit > 0 && s.elapsed >= s.timeLimit {
		s.endLocked(model.GameResultLost, model.EndReasonTimeExpired)
	}

	s.mu.Unlock()
	s.dispatch()
}

// endLocked moves to a terminal status and emits the single game_end event
func (s *Session) endLocked(result model.GameResult, reason model.EndReason) {
	if s.status.IsTerminal() {
		return
	}

	if result == model.GameResultWon {
		s.status = model.SessionStatusWon
	} else {
		s.status = model.SessionStatusLost
	}
	s.endReason = reason
	s.endedAt = s.clock.Now()
	s.selected = nil
	s.stopTimerLocked()

	s.emitLocked(model.EventGameEnd, model.GameEndPayload{
		Result:         result,
		Reason:         reason,
		ElapsedSeconds: s.elapsed,
		CorrectCount:   s.correctCount,
		TotalEntities:  s.catalog.Len(),
	})

	s.logger.Info("session ended",
		slog.String("result", string(result)),
		slog.String("reason", string(reason)),
		slog.Int("correct_count", s.correctCount),
		slog.Int("elapsed_seconds", s.elapsed),
	)
}

// stopTimerLocked cancels the current timer and invalidates its ticks
func (s *Session) stopTimerLocked() {
	s.generation++
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
}

func (s *Session) emitLocked(eventType model.EventType, payload any) {
	s.pending = append(s.pending, model.Event{
		Type:      eventType,
		Timestamp: s.clock.Now(),
		SessionID: s.id,
		Payload:   payload,
	})
}

// dispatch delivers pending events in emission order. Only one goroutine
// delivers at a time; callers return once their own events are delivered.
func (s *Session) dispatch() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		if len(batch) == 0 {
			return
		}

		s.listenersMu.Lock()
		listeners := slices.Clone(s.listeners)
		s.listenersMu.Unlock()

		for _, event := range batch {
			for _, l := range listeners {
				l.fn(event)
			}
		}
	}
}

// Snapshot returns a copy of the session state
func (s *Session) Snapshot() model.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := model.SessionSnapshot{
		ID:               s.id,
		Status:           s.status,
		Lives:            s.lives,
		MaxLives:         s.maxLives,
		CorrectCount:     s.correctCount,
		TotalEntities:    s.catalog.Len(),
		Guessed:          make([]model.EntityID, 0, len(s.guessed)),
		ElapsedSeconds:   s.elapsed,
		TimeLimitSeconds: s.timeLimit,
		EndReason:        s.endReason,
		StartedAt:        s.startedAt,
		EndedAt:          s.endedAt,
	}
	for id := range s.guessed {
		snap.Guessed = append(snap.Guessed, id)
	}
	slices.Sort(snap.Guessed)
	if s.selected != nil {
		id := *s.selected
		snap.SelectedEntityID = &id
	}
	return snap
}

// Status returns the current status
func (s *Session) Status() model.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// LastActivity returns when the session was created or last changed by a caller
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// resolveConfig applies defaults to a start configuration
func resolveConfig(cfg model.SessionConfig) (maxLives, timeLimitSeconds int) {
	switch {
	case cfg.UnlimitedLives:
		maxLives = model.UnlimitedLives
	case cfg.Lives <= 0:
		maxLives = model.DefaultLives
	default:
		maxLives = cfg.Lives
	}

	minutes := cfg.TimeLimitMinutes
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return maxLives, 0
	}
	seconds := math.Ceil(minutes * 60)
	if seconds > maxTimeLimitSeconds {
		seconds = maxTimeLimitSeconds
	}
	return maxLives, int(seconds)
}
