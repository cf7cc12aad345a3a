package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/trendview/internal/controller"
	"github.com/ziadkadry99/trendview/internal/live"
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/site"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	Verbose  bool // log live session lifecycle
}

// Options configure what the server shows.
type Options struct {
	Title      string
	Notice     template.HTML
	Controller controller.Options
}

// Server serves the viewer shell, its live sessions and a small JSON API
// over one Store.
type Server struct {
	cfg        Config
	opts       Options
	labels     render.Labels
	store      *loader.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server reading from store.
func New(cfg Config, store *loader.Store, opts Options) *Server {
	opts.Controller.Labels = opts.Controller.Labels.WithDefaults()
	s := &Server{
		cfg:    cfg,
		opts:   opts,
		labels: opts.Controller.Labels,
		store:  store,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Live sessions outlive the request timeout.
	r.Handle("/ws", live.NewHandler(s.store, s.opts.Controller, s.cfg.Verbose))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"status":   "ok",
				"snapshot": s.store.Status().String(),
			})
		})

		r.Get("/", s.handleShell)
		r.Get("/"+site.StyleAsset, asset("text/css; charset=utf-8", site.Style()))
		r.Get("/"+site.LiveScript, asset("application/javascript; charset=utf-8", site.LiveJS()))

		r.Route("/api", func(r chi.Router) {
			r.Get("/snapshot", s.handleSnapshot)
			r.Get("/render/{section}", s.handleRender)
		})
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("trendview server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleShell serves the page in its initial state. Sections fill in over
// the live session.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	ctrl := controller.New(s.store, s.opts.Controller)
	shell := site.NewShell(ctrl.Document(), site.ShellOptions{
		Title:  s.opts.Title,
		Notice: s.opts.Notice,
		Script: site.LiveScript,
		Labels: s.labels,
	})

	var buf bytes.Buffer
	if err := shell.Render(&buf); err != nil {
		log.Printf("server: %v", err)
		writeError(w, http.StatusInternalServerError, "rendering page failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	switch s.store.Status() {
	case loader.StatusLoading:
		writeError(w, http.StatusServiceUnavailable, "snapshot is loading")
	case loader.StatusFailed:
		writeError(w, http.StatusBadGateway, s.store.Err().Error())
	default:
		writeJSON(w, http.StatusOK, s.store.Snapshot())
	}
}

// handleRender returns one section's fragment for the lang and source query
// parameters. Missing parameters take the default selector values.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	st := viewstate.Default().WithSection(viewstate.Section(chi.URLParam(r, "section")))
	if lang := r.URL.Query().Get("lang"); lang != "" {
		st = st.WithLanguage(lang)
	}
	if source := r.URL.Query().Get("source"); source != "" {
		st = st.WithSource(source)
	}

	status := http.StatusOK
	var html string
	switch s.store.Status() {
	case loader.StatusLoading:
		status = http.StatusServiceUnavailable
		html = render.Placeholder(s.labels.Loading)
	case loader.StatusFailed:
		status = http.StatusBadGateway
		html = render.Placeholder(s.labels.LoadFailed)
	default:
		html = render.Section(s.store.Snapshot(), st, s.labels)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
