package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventTimerTick    EventType = "timer_tick"
	EventCorrectGuess EventType = "correct_guess"
	EventWrongGuess   EventType = "wrong_guess"
	EventLifeLost     EventType = "life_lost"
	EventGameEnd      EventType = "game_end"
)

// Event is the base structure for all session events
type Event struct {
	Type      EventType
	Timestamp time.Time
	SessionID SessionID
	Payload   any // Type-specific data
}

// Listener receives session events.
// Listeners are called synchronously, in emission order.
type Listener func(Event)

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	MaxLives         int // UnlimitedLives if unbounded
	TotalEntities    int
	TimeLimitSeconds int
}

// TimerTickPayload contains data for timer tick events
type TimerTickPayload struct {
	ElapsedSeconds   int
	TimeLimitSeconds int
}

// CorrectGuessPayload contains data for correct guess events
type CorrectGuessPayload struct {
	EntityID      EntityID
	Region        string
	CorrectCount  int
	TotalEntities int
}

// WrongGuessPayload contains data for wrong guess events
type WrongGuessPayload struct {
	EntityID       EntityID
	LivesRemaining int // UnlimitedLives if unbounded
}

// LifeLostPayload contains data for life lost events
type LifeLostPayload struct {
	LivesRemaining int
	MaxLives       int
}

// GameEndPayload contains data for game end events
type GameEndPayload struct {
	Result         GameResult
	Reason         EndReason
	ElapsedSeconds int
	CorrectCount   int
	TotalEntities  int
}
