package components

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/geoquiz/internal/model"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	html, err := RenderString(context.Background(), c)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{61, "1:01"},
		{600, "10:00"},
		{3599, "59:59"},
		{-4, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "seconds %d", tt.seconds)
	}
}

func TestTimerElapsed(t *testing.T) {
	doc := render(t, Timer(model.SessionSnapshot{ElapsedSeconds: 75}))

	timer := doc.Find("#" + TimerID)
	require.Equal(t, 1, timer.Length())
	assert.Equal(t, "1:15", timer.Text())
	assert.False(t, timer.HasClass("countdown"))
}

func TestTimerCountdown(t *testing.T) {
	doc := render(t, Timer(model.SessionSnapshot{ElapsedSeconds: 30, TimeLimitSeconds: 300}))

	timer := doc.Find("#" + TimerID)
	assert.Equal(t, "4:30", timer.Text())
	assert.True(t, timer.HasClass("countdown"))
	assert.False(t, timer.HasClass("warning"))
}

func TestTimerCountdownWarning(t *testing.T) {
	doc := render(t, Timer(model.SessionSnapshot{ElapsedSeconds: 240, TimeLimitSeconds: 300}))

	timer := doc.Find("#" + TimerID)
	assert.Equal(t, "1:00", timer.Text())
	assert.True(t, timer.HasClass("warning"))
}

func TestLivesBounded(t *testing.T) {
	doc := render(t, Lives(1, 3))

	lives := doc.Find("#" + LivesID)
	val, _ := lives.Attr("data-lives")
	assert.Equal(t, "1", val)
	assert.Equal(t, 3, lives.Find(".heart").Length())
	assert.Equal(t, 2, lives.Find(".heart.lost").Length())
}

func TestLivesUnlimited(t *testing.T) {
	doc := render(t, Lives(model.UnlimitedLives, model.UnlimitedLives))

	lives := doc.Find("#" + LivesID)
	assert.True(t, lives.HasClass("unlimited"))
	assert.Equal(t, "∞", lives.Text())
}

func TestScore(t *testing.T) {
	doc := render(t, Score(12, 197))
	assert.Equal(t, "12 / 197", doc.Find("#"+ScoreID).Text())
}

func TestFeedbackEscapes(t *testing.T) {
	doc := render(t, Feedback(FeedbackIncorrect, `<script>alert("x")</script>`))

	feedback := doc.Find("#" + FeedbackID)
	assert.True(t, feedback.HasClass("incorrect"))
	assert.Equal(t, `<script>alert("x")</script>`, feedback.Text())
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestEndSummary(t *testing.T) {
	doc := render(t, EndSummary(model.GameEndPayload{
		Result:         model.GameResultLost,
		Reason:         model.EndReasonTimeExpired,
		ElapsedSeconds: 600,
		CorrectCount:   40,
		TotalEntities:  197,
	}))

	summary := doc.Find("#" + SummaryID)
	assert.True(t, summary.HasClass("lost"))
	reason, _ := summary.Attr("data-reason")
	assert.Equal(t, "time_expired", reason)
	assert.Equal(t, "Game over", summary.Find("h2").Text())
	assert.Equal(t, "40 / 197", summary.Find(".summary-score").Text())
	assert.Equal(t, "10:00", summary.Find(".summary-time").Text())
	assert.Equal(t, "Time's up", summary.Find(".summary-reason").Text())
}

func TestEndSummaryWon(t *testing.T) {
	doc := render(t, EndSummary(model.GameEndPayload{Result: model.GameResultWon, Reason: model.EndReasonCompleted}))
	assert.True(t, doc.Find("#"+SummaryID).HasClass("won"))
}

func TestRegionProgress(t *testing.T) {
	doc := render(t, RegionProgress([]model.RegionProgress{
		{Region: "Africa", Color: "#e74c3c", Guessed: 3, Total: 54},
		{Region: "Europe", Color: "#2ecc71", Guessed: 0, Total: 44},
	}))

	items := doc.Find("#" + ProgressID + " li.region")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Africa", items.First().Find(".region-name").Text())
	assert.Equal(t, "3/54", items.First().Find(".region-count").Text())
	assert.Equal(t, "0/44", items.Last().Find(".region-count").Text())

	style, ok := items.First().Find(".swatch").Attr("style")
	require.True(t, ok)
	assert.Equal(t, "background:#e74c3c", style)
}

func TestRegionProgressDropsNonHexColor(t *testing.T) {
	doc := render(t, RegionProgress([]model.RegionProgress{
		{Region: "Oceania", Color: `red;" onclick="x`, Total: 14},
	}))

	swatch := doc.Find("#" + ProgressID + " .swatch")
	require.Equal(t, 1, swatch.Length())
	_, ok := swatch.Attr("style")
	assert.False(t, ok)
	_, ok = swatch.Attr("onclick")
	assert.False(t, ok)
}

func TestHUD(t *testing.T) {
	doc := render(t, HUD(model.SessionSnapshot{
		Lives:         2,
		MaxLives:      3,
		CorrectCount:  5,
		TotalEntities: 197,
	}))

	assert.Equal(t, 1, doc.Find(".hud #"+TimerID).Length())
	assert.Equal(t, 1, doc.Find(".hud #"+LivesID).Length())
	assert.Equal(t, "5 / 197", doc.Find(".hud #"+ScoreID).Text())
}
