package sse

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/web/components"
)

// SSE event names sent to browsers
const (
	EventNameGameStarted  = "game-started"
	EventNameTimerTick    = "timer-tick"
	EventNameCorrectGuess = "correct-guess"
	EventNameWrongGuess   = "wrong-guess"
	EventNameLifeLost     = "life-lost"
	EventNameGameEnd      = "game-end"
	EventNameState        = "state"
)

// Catalog is what the renderer needs to name entities and report progress
type Catalog interface {
	DisplayName(id model.EntityID) string
	Progress(guessed map[model.EntityID]struct{}) []model.RegionProgress
}

// Renderer converts session events to HTML fragments for SSE
type Renderer struct {
	catalog Catalog
}

// NewRenderer creates a new Renderer
func NewRenderer(catalog Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

// WrapForOOBSwap wraps HTML in a slot div that htmx swaps out of band
func WrapForOOBSwap(id, html string) string {
	return `<div id="` + id + `-slot" hx-swap-oob="innerHTML">` + html + `</div>`
}

// EventData represents SSE event data
type EventData struct {
	EventName string
	HTML      string
}

// RenderEvent converts a session event to SSE data.
// snap is the session state at or after the event.
func (r *Renderer) RenderEvent(ctx context.Context, event model.Event, snap model.SessionSnapshot) ([]EventData, error) {
	switch p := event.Payload.(type) {
	case model.GameStartedPayload:
		return r.renderState(ctx, EventNameGameStarted, snap)

	case model.TimerTickPayload:
		return r.render(ctx, EventNameTimerTick,
			slot{components.TimerID, components.Timer(model.SessionSnapshot{
				ElapsedSeconds:   p.ElapsedSeconds,
				TimeLimitSeconds: p.TimeLimitSeconds,
			})},
		)

	case model.CorrectGuessPayload:
		name := r.catalog.DisplayName(p.EntityID)
		return r.render(ctx, EventNameCorrectGuess,
			slot{components.ScoreID, components.Score(p.CorrectCount, p.TotalEntities)},
			slot{components.FeedbackID, components.Feedback(components.FeedbackCorrect, "Correct! "+name)},
			slot{components.ProgressID, components.RegionProgress(r.catalog.Progress(snap.GuessedSet()))},
		)

	case model.WrongGuessPayload:
		message := "Not quite, try again"
		if p.LivesRemaining == 0 {
			message = "Not quite"
		}
		return r.render(ctx, EventNameWrongGuess,
			slot{components.FeedbackID, components.Feedback(components.FeedbackIncorrect, message)},
		)

	case model.LifeLostPayload:
		return r.render(ctx, EventNameLifeLost,
			slot{components.LivesID, components.Lives(p.LivesRemaining, p.MaxLives)},
		)

	case model.GameEndPayload:
		return r.render(ctx, EventNameGameEnd,
			slot{components.SummaryID, components.EndSummary(p)},
		)

	default:
		return nil, fmt.Errorf("unsupported event %q", event.Type)
	}
}

// RenderState renders the full HUD for a client that has just connected
func (r *Renderer) RenderState(ctx context.Context, snap model.SessionSnapshot) ([]EventData, error) {
	return r.renderState(ctx, EventNameState, snap)
}

func (r *Renderer) renderState(ctx context.Context, name string, snap model.SessionSnapshot) ([]EventData, error) {
	return r.render(ctx, name,
		slot{components.TimerID, components.Timer(snap)},
		slot{components.LivesID, components.Lives(snap.Lives, snap.MaxLives)},
		slot{components.ScoreID, components.Score(snap.CorrectCount, snap.TotalEntities)},
		slot{components.ProgressID, components.RegionProgress(r.catalog.Progress(snap.GuessedSet()))},
	)
}

type slot struct {
	id        string
	component templ.Component
}

// render renders each slot into one event whose data holds every swap
func (r *Renderer) render(ctx context.Context, name string, slots ...slot) ([]EventData, error) {
	var html string
	for _, s := range slots {
		fragment, err := components.RenderString(ctx, s.component)
		if err != nil {
			return nil, err
		}
		html += WrapForOOBSwap(s.id, fragment)
	}
	return []EventData{{EventName: name, HTML: html}}, nil
}
