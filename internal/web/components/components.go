// Package components renders the quiz HUD fragments pushed to browsers over SSE.
package components

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/a-h/templ"

	"github.com/mcoot/geoquiz/internal/model"
)

// Element ids targeted by out-of-band swaps
const (
	TimerID    = "quiz-timer"
	LivesID    = "quiz-lives"
	ScoreID    = "quiz-score"
	FeedbackID = "quiz-feedback"
	SummaryID  = "quiz-summary"
	ProgressID = "quiz-progress"
)

// WarningSeconds is the remaining time at or below which the countdown is highlighted
const WarningSeconds = 60

// FormatClock renders seconds as m:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FeedbackKind styles a feedback message
type FeedbackKind string

const (
	FeedbackCorrect   FeedbackKind = "correct"
	FeedbackIncorrect FeedbackKind = "incorrect"
)

// ReasonText describes why a session ended
func ReasonText(reason model.EndReason) string {
	switch reason {
	case model.EndReasonCompleted:
		return "All countries found"
	case model.EndReasonLivesExhausted:
		return "Out of lives"
	case model.EndReasonTimeExpired:
		return "Time's up"
	case model.EndReasonGaveUp:
		return "Gave up"
	default:
		return ""
	}
}

func timerClasses(snap model.SessionSnapshot) string {
	remaining := snap.RemainingSeconds()
	switch {
	case remaining < 0:
		return "timer"
	case remaining <= WarningSeconds:
		return "timer countdown warning"
	default:
		return "timer countdown"
	}
}

func timerLabel(snap model.SessionSnapshot) string {
	if remaining := snap.RemainingSeconds(); remaining >= 0 {
		return FormatClock(remaining)
	}
	return FormatClock(snap.ElapsedSeconds)
}

func scoreText(correct, total int) string {
	return fmt.Sprintf("%d / %d", correct, total)
}

func countText(guessed, total int) string {
	return fmt.Sprintf("%d/%d", guessed, total)
}

func summaryTitle(end model.GameEndPayload) string {
	if end.Result == model.GameResultWon {
		return "You named every country!"
	}
	return "Game over"
}

// swatchAttrs colors a region swatch; anything but a hex color is dropped
func swatchAttrs(color string) templ.Attributes {
	if !hexColor.MatchString(color) {
		return templ.Attributes{}
	}
	return templ.Attributes{"style": "background:" + color}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// RenderString renders a component to a string
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
