package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/geoquiz/internal/api"
	"github.com/mcoot/geoquiz/internal/api/apierr"
	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/factory"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/testutil"
)

// testServer wires the router over a test app with mocked clock and scheduler
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithFeed(t, testutil.SampleFeed())
}

func newTestServerWithFeed(t *testing.T, feed model.CatalogFeed) *testServer {
	t.Helper()

	app := factory.NewTestAppWithFeed(feed)
	router := api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		Sessions:    app.Sessions,
		Catalog:     app.Catalog,
		Suggest:     app.Suggest,
		HubManager:  app.HubManager,
		Broadcaster: app.Broadcaster,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func (ts *testServer) createSession(t *testing.T, body any) response.Session {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	return decode[response.Session](t, rr)
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.createSession(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	health := decode[response.Health](t, rr)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)
	assert.Equal(t, 2, health.CatalogEntities)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
}

func TestCreateSessionDefaults(t *testing.T) {
	ts := newTestServer(t)

	sess := ts.createSession(t, nil)
	assert.Equal(t, "playing", sess.Status)
	assert.Equal(t, model.DefaultLives, sess.Lives)
	assert.Equal(t, model.DefaultLives, sess.MaxLives)
	assert.Equal(t, 2, sess.TotalEntities)
	assert.Equal(t, 0, sess.TimeLimitSeconds)
	assert.Nil(t, sess.RemainingSeconds)
	assert.Nil(t, sess.SelectedEntityID)
	assert.Empty(t, sess.Guessed)
	assert.NotNil(t, sess.StartedAt)
}

func TestCreateSessionWithConfig(t *testing.T) {
	ts := newTestServer(t)

	sess := ts.createSession(t, map[string]any{"unlimited_lives": true, "time_limit_minutes": 2})
	assert.True(t, sess.UnlimitedLives)
	assert.Equal(t, model.UnlimitedLives, sess.Lives)
	assert.Equal(t, 120, sess.TimeLimitSeconds)
	require.NotNil(t, sess.RemainingSeconds)
	assert.Equal(t, 120, *sess.RemainingSeconds)
}

func TestCreateIdleSessionThenStart(t *testing.T) {
	ts := newTestServer(t)

	sess := ts.createSession(t, map[string]any{"idle": true})
	assert.Equal(t, "idle", sess.Status)
	assert.Nil(t, sess.StartedAt)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/start", map[string]any{"lives": 5})
	require.Equal(t, http.StatusOK, rr.Code)

	started := decode[response.Session](t, rr)
	assert.Equal(t, "playing", started.Status)
	assert.Equal(t, 5, started.Lives)
}

func TestCreateSessionBadBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestUnknownSession(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/sessions/missing", nil},
		{http.MethodDelete, "/api/v1/sessions/missing", nil},
		{http.MethodPost, "/api/v1/sessions/missing/start", nil},
		{http.MethodPost, "/api/v1/sessions/missing/select", map[string]int{"entity_id": 1}},
		{http.MethodPost, "/api/v1/sessions/missing/guess", map[string]string{"text": "Alpha"}},
		{http.MethodPost, "/api/v1/sessions/missing/give-up", nil},
		{http.MethodGet, "/api/v1/sessions/missing/suggestions?q=a", nil},
		{http.MethodGet, "/api/v1/sessions/missing/progress", nil},
		{http.MethodGet, "/api/v1/sessions/missing/events", nil},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := ts.request(tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, apierr.CodeSessionNotFound, errorCode(t, rr))
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, errorCode(t, rr))
}

func TestPlayThroughGame(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, map[string]any{"lives": 2})
	base := "/api/v1/sessions/" + sess.ID

	// Guess without a selection
	rr := ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "Alpha"})
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.GuessResult](t, rr)
	assert.Equal(t, "no_selection", result.Outcome)
	assert.Nil(t, result.EntityID)

	// Select and answer correctly
	rr = ts.request(http.MethodPost, base+"/select", map[string]int{"entity_id": 1})
	require.Equal(t, http.StatusOK, rr.Code)
	selected := decode[response.Session](t, rr)
	require.NotNil(t, selected.SelectedEntityID)
	assert.Equal(t, 1, *selected.SelectedEntityID)

	rr = ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "  alpha "})
	require.Equal(t, http.StatusOK, rr.Code)
	result = decode[response.GuessResult](t, rr)
	assert.True(t, result.Correct)
	assert.Equal(t, "North", result.Region)
	assert.Equal(t, []int{1}, result.Session.Guessed)
	assert.Nil(t, result.Session.SelectedEntityID)

	// Selecting a guessed entity is ignored
	rr = ts.request(http.MethodPost, base+"/select", map[string]int{"entity_id": 1})
	assert.Nil(t, decode[response.Session](t, rr).SelectedEntityID)

	// Wrong answer costs a life
	ts.request(http.MethodPost, base+"/select", map[string]int{"entity_id": 2})
	rr = ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "Gamma"})
	result = decode[response.GuessResult](t, rr)
	assert.Equal(t, "incorrect", result.Outcome)
	require.NotNil(t, result.LivesRemaining)
	assert.Equal(t, 1, *result.LivesRemaining)
	require.NotNil(t, result.Session.SelectedEntityID)

	// Progress reflects the correct guess
	rr = ts.request(http.MethodGet, base+"/progress", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	progress := decode[response.Progress](t, rr)
	require.Len(t, progress.Regions, 2)
	assert.Equal(t, response.RegionProgress{Region: "North", Color: "#4a90d9", Guessed: 1, Total: 1}, progress.Regions[0])
	assert.Equal(t, 0, progress.Regions[1].Guessed)

	// Final answer wins
	rr = ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "BRAVO"})
	result = decode[response.GuessResult](t, rr)
	assert.True(t, result.Correct)
	assert.Equal(t, "won", result.Session.Status)
	assert.Equal(t, "completed", result.Session.EndReason)
	assert.NotNil(t, result.Session.EndedAt)
}

func TestSelectRequiresEntityID(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/select", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/select", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSelectUnknownEntityIsIgnored(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/select", map[string]int{"entity_id": 999})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decode[response.Session](t, rr).SelectedEntityID)
}

func TestGiveUp(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/give-up", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	ended := decode[response.Session](t, rr)
	assert.Equal(t, "lost", ended.Status)
	assert.Equal(t, "gave_up", ended.EndReason)

	// Repeating is harmless
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/give-up", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "lost", decode[response.Session](t, rr).Status)
}

func TestTimerAdvancesElapsed(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, map[string]any{"time_limit_minutes": 1})

	ts.app.MockScheduler.TickN(15)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/"+sess.ID, nil)
	got := decode[response.Session](t, rr)
	assert.Equal(t, 15, got.ElapsedSeconds)
	require.NotNil(t, got.RemainingSeconds)
	assert.Equal(t, 45, *got.RemainingSeconds)

	ts.app.MockScheduler.TickN(45)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+sess.ID, nil)
	got = decode[response.Session](t, rr)
	assert.Equal(t, "lost", got.Status)
	assert.Equal(t, "time_expired", got.EndReason)
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)
	ts.app.HubManager.GetOrCreateHub(model.SessionID(sess.ID))

	rr := ts.request(http.MethodDelete, "/api/v1/sessions/"+sess.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 0, ts.app.HubManager.HubCount())

	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+sess.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSuggestions(t *testing.T) {
	ts := newTestServerWithFeed(t, catalog.WorldFeed())
	sess := ts.createSession(t, nil)
	base := "/api/v1/sessions/" + sess.ID

	rr := ts.request(http.MethodGet, base+"/suggestions?q=nige", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[response.Suggestions](t, rr)
	assert.Equal(t, "nige", got.Query)
	require.Len(t, got.Suggestions, 2)
	assert.Equal(t, "Niger", got.Suggestions[0].Name)
	assert.Equal(t, "Nigeria", got.Suggestions[1].Name)

	// Guessed entities drop out
	ts.request(http.MethodPost, base+"/select", map[string]int{"entity_id": 562})
	ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "Niger"})

	rr = ts.request(http.MethodGet, base+"/suggestions?q=nige&limit=1", nil)
	got = decode[response.Suggestions](t, rr)
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, "Nigeria", got.Suggestions[0].Name)

	rr = ts.request(http.MethodGet, base+"/suggestions?q=nige&limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[response.Catalog](t, rr)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, "Alpha", list.Entities[0].Name)
	assert.Equal(t, []string{"Beta", "Bravo"}, list.Entities[1].Aliases)

	rr = ts.request(http.MethodGet, "/api/v1/catalog?region=South", nil)
	list = decode[response.Catalog](t, rr)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Deep South", list.Entities[0].Subregion)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/regions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	regions := decode[response.Regions](t, rr)
	require.Len(t, regions.Regions, 2)
	assert.Equal(t, "North", regions.Regions[0].Name)
	assert.Equal(t, []model.EntityID{1}, regions.Regions[0].Subregions[0].Members)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/entities/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Beta", decode[response.Entity](t, rr).Name)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/entities/3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeEntityNotFound, errorCode(t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/catalog/entities/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCatalogEntitiesCarryMapData(t *testing.T) {
	ts := newTestServerWithFeed(t, testutil.AccentedFeed())

	rr := ts.request(http.MethodGet, "/api/v1/catalog/entities/492", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	monaco := decode[response.Entity](t, rr)
	assert.Equal(t, "#4a90d9", monaco.Color)
	require.NotNil(t, monaco.Marker)
	assert.InDelta(t, 43.74, monaco.Marker.Latitude, 1e-9)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/entities/384", nil)
	ivory := decode[response.Entity](t, rr)
	assert.Equal(t, "#e67e22", ivory.Color)
	assert.Nil(t, ivory.Marker)
}

func TestCatalogMap(t *testing.T) {
	ts := newTestServerWithFeed(t, testutil.AccentedFeed())

	rr := ts.request(http.MethodGet, "/api/v1/catalog/map", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	layers := decode[response.MapLayers](t, rr)
	assert.Equal(t, []int{384, 492, 678}, layers.Polygons)
	require.Len(t, layers.Markers, 2)
	assert.Equal(t, 492, layers.Markers[0].ID)
	assert.Equal(t, "Monaco", layers.Markers[0].Name)
	assert.InDelta(t, 7.42, layers.Markers[0].Longitude, 1e-9)

	// Features the catalog does not know are dropped; markers are always listed
	rr = ts.request(http.MethodGet, "/api/v1/catalog/map?features=384,%20999,384", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	layers = decode[response.MapLayers](t, rr)
	assert.Equal(t, []int{384}, layers.Polygons)
	assert.Len(t, layers.Markers, 2)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/map?features=384,x", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionNames(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)
	base := "/api/v1/sessions/" + sess.ID

	rr := ts.request(http.MethodGet, base+"/names", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	names := decode[response.Names](t, rr)
	assert.Equal(t, sess.ID, names.SessionID)
	assert.Equal(t, []string{"Alpha", "Beta"}, names.Names)

	ts.request(http.MethodPost, base+"/select", map[string]int{"entity_id": 1})
	ts.request(http.MethodPost, base+"/guess", map[string]string{"text": "alpha"})

	rr = ts.request(http.MethodGet, base+"/names", nil)
	names = decode[response.Names](t, rr)
	assert.Equal(t, 1, names.Count)
	assert.Equal(t, []string{"Beta"}, names.Names)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/missing/names", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEventsStream(t *testing.T) {
	ts := newTestServer(t)
	sess := ts.createSession(t, nil)

	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/sessions/"+sess.ID+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	nextEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if name, ok := strings.CutPrefix(strings.TrimSpace(line), "event: "); ok {
				return name
			}
		}
	}

	assert.Equal(t, "connected", nextEvent())
	assert.Equal(t, "state", nextEvent())

	// Live events reach the stream
	ts.request(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/give-up", nil)
	assert.Equal(t, "game-end", nextEvent())
}
