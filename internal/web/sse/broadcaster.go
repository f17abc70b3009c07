package sse

import (
	"context"
	"log/slog"

	"github.com/mcoot/geoquiz/internal/model"
)

// Session is the part of a quiz session the broadcaster observes
type Session interface {
	ID() model.SessionID
	Subscribe(fn model.Listener) func()
	Snapshot() model.SessionSnapshot
}

// Broadcaster forwards session events to the session's SSE clients
type Broadcaster struct {
	hubManager *HubManager
	renderer   *Renderer
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, renderer *Renderer, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		renderer:   renderer,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Attach subscribes to a session. Events are only rendered while the
// session has a hub, i.e. while someone is watching.
func (b *Broadcaster) Attach(sess Session) func() {
	return sess.Subscribe(func(event model.Event) {
		b.publish(sess, event)
	})
}

func (b *Broadcaster) publish(sess Session, event model.Event) {
	hub := b.hubManager.GetHub(event.SessionID)
	if hub == nil {
		return
	}

	data, err := b.renderer.RenderEvent(context.Background(), event, sess.Snapshot())
	if err != nil {
		b.logger.Error("sse failed to render event",
			slog.String("session_id", string(event.SessionID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}

	for _, d := range data {
		hub.BroadcastEvent(d.EventName, d.HTML)
	}
}

// InitialState renders the current state of a session as a raw SSE message
func (b *Broadcaster) InitialState(ctx context.Context, sess Session) []byte {
	data, err := b.renderer.RenderState(ctx, sess.Snapshot())
	if err != nil {
		b.logger.Error("sse failed to render state",
			slog.String("session_id", string(sess.ID())),
			slog.Any("error", err))
		return nil
	}

	var out []byte
	for _, d := range data {
		out = append(out, formatSSEMessage(d.EventName, d.HTML)...)
	}
	return out
}
