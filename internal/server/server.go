package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lazypower/lovewhisper/internal/logging"
	"github.com/lazypower/lovewhisper/internal/session"
	"github.com/lazypower/lovewhisper/internal/store"
)

// Server is the lovewhisper HTTP API server.
type Server struct {
	db      *store.DB
	session *session.Controller
	log     logging.Logger
	router  chi.Router
	version string
	started time.Time
}

// New creates a Server over an open database and a session controller.
// log may be nil.
func New(db *store.DB, ctl *session.Controller, log logging.Logger, version string) *Server {
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{
		db:      db,
		session: ctl,
		log:     log.With("component", "server"),
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/state", s.handleState)

		r.Post("/sets/initial", s.handleInitialSet)
		r.Post("/sets", s.handleNewSet)
		r.Put("/filters", s.handleSetFilters)
		r.Get("/catalog/options", s.handleCatalogOptions)
		r.Get("/favorites", s.handleFavorites)

		r.Route("/assets/{assetID}", func(r chi.Router) {
			r.Post("/copy", s.handleCopy)
			r.Post("/share", s.handleShare)
			r.Post("/favorite", s.handleToggleFavorite)
		})

		r.Put("/subscription", s.handleSetSubscription)
		r.Post("/subscription/trial", s.handleAcceptTrial)
		r.Delete("/upsell", s.handleDismissUpsell)

		r.Get("/toasts", s.handleToasts)
		r.Delete("/toasts/{toastID}", s.handleDismissToast)
	})

	r.Get("/*", spaHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := s.db != nil && s.db.Ping() == nil
	dbPath := ""
	if s.db != nil {
		dbPath = s.db.Path
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": dbPath,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
