package model

import "time"

// SessionID uniquely identifies a quiz session
type SessionID string

// SessionStatus represents the current phase of a session
type SessionStatus string

const (
	SessionStatusIdle    SessionStatus = "idle"    // Created, not started
	SessionStatusPlaying SessionStatus = "playing" // Accepting selections and guesses
	SessionStatusWon     SessionStatus = "won"     // Every entity named
	SessionStatusLost    SessionStatus = "lost"    // Lives or time exhausted, or gave up
)

// IsTerminal returns true for won and lost
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusWon || s == SessionStatusLost
}

// UnlimitedLives is reported as the lives count of sessions without a lives bound
const UnlimitedLives = -1

const (
	DefaultLives = 3
)

// SessionConfig holds the options recognized by Start
type SessionConfig struct {
	Lives            int     // Positive; anything else falls back to DefaultLives
	UnlimitedLives   bool    // Overrides Lives
	TimeLimitMinutes float64 // 0 = unlimited
}

// GameResult is the final outcome of a session
type GameResult string

const (
	GameResultWon  GameResult = "won"
	GameResultLost GameResult = "lost"
)

// EndReason explains why a session ended. Losses by lives, time and giving up
// all report GameResultLost; the reason lets richer UIs tell them apart.
type EndReason string

const (
	EndReasonCompleted      EndReason = "completed"
	EndReasonLivesExhausted EndReason = "lives_exhausted"
	EndReasonTimeExpired    EndReason = "time_expired"
	EndReasonGaveUp         EndReason = "gave_up"
)

// GuessOutcome distinguishes the results of SubmitGuess
type GuessOutcome string

const (
	GuessNoSelection GuessOutcome = "no_selection"
	GuessCorrect     GuessOutcome = "correct"
	GuessIncorrect   GuessOutcome = "incorrect"
)

// GuessResult is returned from SubmitGuess
type GuessResult struct {
	Outcome        GuessOutcome
	EntityID       EntityID // Zero for GuessNoSelection
	Region         string   // Set when correct
	LivesRemaining int      // Set when incorrect; UnlimitedLives if unbounded
}

// Correct returns true if the guess matched
func (r GuessResult) Correct() bool {
	return r.Outcome == GuessCorrect
}

// SessionSnapshot is a point-in-time copy of a session's state
type SessionSnapshot struct {
	ID               SessionID
	Status           SessionStatus
	Lives            int // UnlimitedLives if unbounded
	MaxLives         int // UnlimitedLives if unbounded
	CorrectCount     int
	TotalEntities    int
	Guessed          []EntityID // Sorted ascending
	SelectedEntityID *EntityID
	ElapsedSeconds   int
	TimeLimitSeconds int // 0 = unlimited
	EndReason        EndReason
	StartedAt        time.Time
	EndedAt          time.Time
}

// HasUnlimitedLives returns true if the session has no lives bound
func (s SessionSnapshot) HasUnlimitedLives() bool {
	return s.MaxLives == UnlimitedLives
}

// RemainingSeconds returns the time left, or -1 when there is no limit
func (s SessionSnapshot) RemainingSeconds() int {
	if s.TimeLimitSeconds <= 0 {
		return -1
	}
	return max(0, s.TimeLimitSeconds-s.ElapsedSeconds)
}

// IsGuessed returns true if the entity is in the guessed set
func (s SessionSnapshot) IsGuessed(id EntityID) bool {
	for _, g := range s.Guessed {
		if g == id {
			return true
		}
	}
	return false
}

// GuessedSet returns the guessed entities as a set
func (s SessionSnapshot) GuessedSet() map[EntityID]struct{} {
	set := make(map[EntityID]struct{}, len(s.Guessed))
	for _, id := range s.Guessed {
		set[id] = struct{}{}
	}
	return set
}
