package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/geoquiz/internal/dependencies/mocks"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/services/resolver"
	"github.com/mcoot/geoquiz/internal/services/session"
	"github.com/mcoot/geoquiz/internal/testutil"
	"github.com/mcoot/geoquiz/internal/web/components"
)

func TestWrapForOOBSwap(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		html     string
		expected string
	}{
		{
			name:     "simple content",
			id:       "quiz-score",
			html:     "<span>1 / 2</span>",
			expected: `<div id="quiz-score-slot" hx-swap-oob="innerHTML"><span>1 / 2</span></div>`,
		},
		{
			name:     "empty content",
			id:       "quiz-feedback",
			html:     "",
			expected: `<div id="quiz-feedback-slot" hx-swap-oob="innerHTML"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapForOOBSwap(tt.id, tt.html))
		})
	}
}

type broadcastFixture struct {
	scheduler   *mocks.MockScheduler
	session     *session.Session
	hub         *Hub
	client      *Client
	broadcaster *Broadcaster
}

func newBroadcastFixture(t *testing.T) *broadcastFixture {
	t.Helper()

	cat, err := catalog.New(testutil.SampleFeed())
	require.NoError(t, err)

	scheduler := mocks.NewMockScheduler()
	sess := session.New(cat, resolver.New(cat), session.Options{
		ID:        "session-1",
		Scheduler: scheduler,
		Clock:     mocks.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	manager := NewHubManager(testutil.NopLogger())
	t.Cleanup(func() { manager.RemoveHub("session-1") })

	broadcaster := NewBroadcaster(manager, NewRenderer(cat), testutil.NopLogger())
	broadcaster.Attach(sess)

	hub := manager.GetOrCreateHub("session-1")
	client := NewClient(hub)
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	return &broadcastFixture{
		scheduler:   scheduler,
		session:     sess,
		hub:         hub,
		client:      client,
		broadcaster: broadcaster,
	}
}

// next reads one SSE message and returns its event name and parsed data
func (f *broadcastFixture) next(t *testing.T) (string, *goquery.Document) {
	t.Helper()
	select {
	case msg := <-f.client.send:
		return parseSSE(t, string(msg))
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return "", nil
	}
}

func parseSSE(t *testing.T, msg string) (string, *goquery.Document) {
	t.Helper()
	var name string
	var data []string
	for _, line := range strings.Split(msg, "\n") {
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(strings.Join(data, "\n")))
	require.NoError(t, err)
	return name, doc
}

func TestBroadcaster_GameFlow(t *testing.T) {
	f := newBroadcastFixture(t)

	f.session.Start(model.SessionConfig{Lives: 2, TimeLimitMinutes: 1})
	name, doc := f.next(t)
	assert.Equal(t, EventNameGameStarted, name)
	assert.Equal(t, "1:00", doc.Find("#"+components.TimerID).Text())
	assert.Equal(t, "0 / 2", doc.Find("#"+components.ScoreID).Text())
	assert.Equal(t, 2, doc.Find("#"+components.ProgressID+" li").Length())

	f.scheduler.Tick()
	name, doc = f.next(t)
	assert.Equal(t, EventNameTimerTick, name)
	assert.Equal(t, "0:59", doc.Find("#"+components.TimerID).Text())
	assert.Equal(t, 1, doc.Find("#"+components.TimerID+"-slot").Length())

	f.session.SelectEntity(2)
	f.session.SubmitGuess("Bravo")
	name, doc = f.next(t)
	assert.Equal(t, EventNameCorrectGuess, name)
	assert.Equal(t, "1 / 2", doc.Find("#"+components.ScoreID).Text())
	assert.Equal(t, "Correct! Beta", doc.Find("#"+components.FeedbackID).Text())
	assert.Equal(t, "1/1", doc.Find(`li[data-region="South"] .region-count`).Text())

	f.session.SelectEntity(1)
	f.session.SubmitGuess("Gamma")
	name, doc = f.next(t)
	assert.Equal(t, EventNameWrongGuess, name)
	assert.True(t, doc.Find("#"+components.FeedbackID).HasClass("incorrect"))

	name, doc = f.next(t)
	assert.Equal(t, EventNameLifeLost, name)
	lives, _ := doc.Find("#" + components.LivesID).Attr("data-lives")
	assert.Equal(t, "1", lives)

	f.session.GiveUp()
	name, doc = f.next(t)
	assert.Equal(t, EventNameGameEnd, name)
	assert.Equal(t, "Gave up", doc.Find(".summary-reason").Text())
}

func TestBroadcaster_NoHubNoBroadcast(t *testing.T) {
	f := newBroadcastFixture(t)
	f.hub.Unregister(f.client)

	other, err := catalog.New(testutil.SampleFeed())
	require.NoError(t, err)
	unwatched := session.New(other, resolver.New(other), session.Options{
		ID:        "unwatched",
		Scheduler: f.scheduler,
	})
	f.broadcaster.Attach(unwatched)

	// Nothing to assert beyond not panicking without a hub
	unwatched.Start(model.SessionConfig{})
	unwatched.GiveUp()
}

func TestBroadcaster_InitialState(t *testing.T) {
	f := newBroadcastFixture(t)
	f.session.Start(model.SessionConfig{UnlimitedLives: true})
	f.next(t)

	name, doc := parseSSE(t, string(f.broadcaster.InitialState(context.Background(), f.session)))
	assert.Equal(t, EventNameState, name)
	assert.True(t, doc.Find("#"+components.LivesID).HasClass("unlimited"))
	assert.Equal(t, "0:00", doc.Find("#"+components.TimerID).Text())
}

func TestRenderer_UnknownPayload(t *testing.T) {
	cat, err := catalog.New(testutil.SampleFeed())
	require.NoError(t, err)

	_, err = NewRenderer(cat).RenderEvent(context.Background(), model.Event{Type: "mystery"}, model.SessionSnapshot{})
	assert.Error(t, err)
}
