package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridsnap/pkg/layout"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 5 * time.Second

// Server serves one layout manager.
type Server struct {
	mu     sync.Mutex
	mgr    *layout.Manager
	logger *log.Logger
	router chi.Router
}

// New creates a server for mgr. A nil logger uses log.Default().
func New(mgr *layout.Manager, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{mgr: mgr, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/layout", func(r chi.Router) {
		r.Get("/", s.handleGetLayout)
		r.Put("/", s.handleLoadLayout)
		r.Delete("/", s.handleClearLayout)
	})

	r.Route("/units", func(r chi.Router) {
		r.Post("/", s.handleAddUnit)
		r.Get("/{id}", s.handleGetUnit)
		r.Delete("/{id}", s.handleRemoveUnit)
	})

	r.Post("/pointer", s.handlePointer)
	r.Put("/editable", s.handleEditable)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// withManager runs fn while holding the manager lock.
func (s *Server) withManager(fn func(m *layout.Manager)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.mgr)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
