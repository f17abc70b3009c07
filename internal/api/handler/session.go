package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/geoquiz/internal/api/apierr"
	"github.com/mcoot/geoquiz/internal/api/request"
	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/services/session"
	"github.com/mcoot/geoquiz/internal/services/suggest"
	"github.com/mcoot/geoquiz/internal/web/sse"
)

// maxSuggestLimit bounds the limit query parameter
const maxSuggestLimit = 50

// SessionHandler handles quiz session endpoints
type SessionHandler struct {
	sessions    *session.Manager
	catalog     *catalog.Catalog
	suggest     *suggest.Service
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	sessions *session.Manager,
	catalog *catalog.Catalog,
	suggest *suggest.Service,
	hubManager *sse.HubManager,
	broadcaster *sse.Broadcaster,
) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		catalog:     catalog,
		suggest:     suggest,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	var sess *session.Session
	if req.Idle {
		sess = h.sessions.Create(nil)
	} else {
		cfg := req.Config()
		sess = h.sessions.Create(&cfg)
	}

	response.JSON(w, http.StatusCreated, response.SessionFromSnapshot(sess.Snapshot()))
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromSnapshot(sess.Snapshot()))
}

// Delete handles DELETE /sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Remove(sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /sessions/{id}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	sess, err := h.sessions.Restart(sessionID(r), req.Config())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromSnapshot(sess.Snapshot()))
}

// Select handles POST /sessions/{id}/select
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SelectRequest
	if err := decodeRequired(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.EntityID == nil {
		WriteError(w, apierr.NewInvalidRequestError("entity_id is required"))
		return
	}

	sess.SelectEntity(model.EntityID(*req.EntityID))

	response.JSON(w, http.StatusOK, response.SessionFromSnapshot(sess.Snapshot()))
}

// Guess handles POST /sessions/{id}/guess
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.GuessRequest
	if err := decodeRequired(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result := sess.SubmitGuess(req.Text)

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(result, sess.Snapshot()))
}

// GiveUp handles POST /sessions/{id}/give-up
func (h *SessionHandler) GiveUp(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess.GiveUp()

	response.JSON(w, http.StatusOK, response.SessionFromSnapshot(sess.Snapshot()))
}

// Suggestions handles GET /sessions/{id}/suggestions?q=&limit=
func (h *SessionHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	limit := suggest.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(n, maxSuggestLimit)
	}

	query := r.URL.Query().Get("q")
	suggestions := h.suggest.Suggest(query, sess.Snapshot().GuessedSet(), limit)

	response.JSON(w, http.StatusOK, response.SuggestionsFromModel(query, suggestions))
}

// Names handles GET /sessions/{id}/names
func (h *SessionHandler) Names(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	names := h.suggest.Names(sess.Snapshot().GuessedSet())

	response.JSON(w, http.StatusOK, response.Names{SessionID: string(sess.ID()), Count: len(names), Names: names})
}

// Progress handles GET /sessions/{id}/progress
func (h *SessionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	progress := h.catalog.Progress(sess.Snapshot().GuessedSet())

	response.JSON(w, http.StatusOK, response.ProgressFromModel(sess.ID(), progress))
}

// Events handles GET /sessions/{id}/events (SSE)
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(sess.ID())
	initial := h.broadcaster.InitialState(r.Context(), sess)

	sse.ServeSSE(w, r, hub, initial)
}

func (h *SessionHandler) session(r *http.Request) (*session.Session, error) {
	return h.sessions.Get(sessionID(r))
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}
