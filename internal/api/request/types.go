package request

import "github.com/mcoot/geoquiz/internal/model"

// StartSessionRequest is the request body for creating or restarting a session.
// Every field is optional; missing or invalid values fall back to defaults.
type StartSessionRequest struct {
	Lives            int     `json:"lives,omitempty"`
	UnlimitedLives   bool    `json:"unlimited_lives,omitempty"`
	TimeLimitMinutes float64 `json:"time_limit_minutes,omitempty"`
	// Idle creates the session without starting a game (create only)
	Idle bool `json:"idle,omitempty"`
}

// Config converts the request to a session configuration
func (r StartSessionRequest) Config() model.SessionConfig {
	return model.SessionConfig{
		Lives:            r.Lives,
		UnlimitedLives:   r.UnlimitedLives,
		TimeLimitMinutes: r.TimeLimitMinutes,
	}
}

// SelectRequest is the request body for selecting an entity
type SelectRequest struct {
	EntityID *int `json:"entity_id"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Text string `json:"text"`
}
