package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/geoquiz/internal/api/apierr"
	"github.com/mcoot/geoquiz/internal/api/handler"
	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/middleware"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/services/session"
	"github.com/mcoot/geoquiz/internal/services/suggest"
	"github.com/mcoot/geoquiz/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *session.Manager
	Catalog     *catalog.Catalog
	Suggest     *suggest.Service
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	sessionHandler := handler.NewSessionHandler(cfg.Sessions, cfg.Catalog, cfg.Suggest, cfg.HubManager, cfg.Broadcaster)
	catalogHandler := handler.NewCatalogHandler(cfg.Catalog)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/start", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/select", sessionHandler.Select).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/give-up", sessionHandler.GiveUp).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/suggestions", sessionHandler.Suggestions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/names", sessionHandler.Names).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/progress", sessionHandler.Progress).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Catalog routes
	api.HandleFunc("/catalog", catalogHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/catalog/regions", catalogHandler.Regions).Methods(http.MethodGet)
	api.HandleFunc("/catalog/map", catalogHandler.Map).Methods(http.MethodGet)
	api.HandleFunc("/catalog/entities/{id}", catalogHandler.Entity).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler(cfg)).Methods(http.MethodGet)

	return r
}

func healthHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:          "ok",
			Sessions:        cfg.Sessions.Count(),
			CatalogEntities: cfg.Catalog.Len(),
		})
	}
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
