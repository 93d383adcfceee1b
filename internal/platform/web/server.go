// Package web serves the games to browsers over WebSocket, plus a small
// JSON API for the game list, high scores, cat facts and the contact form.
package web

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vovakirdan/folio-arcade/internal/catfact"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/contact"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/logging"
	"github.com/vovakirdan/folio-arcade/internal/session"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP and WebSocket front end.
type Server struct {
	store     *storage.Store
	facts     *catfact.Client
	contact   *contact.Client
	logger    *log.Logger
	access    *zap.SugaredLogger
	runtime   core.RuntimeConfig
	newTicker session.TickerFunc
	upgrader  websocket.Upgrader

	base     context.Context
	sessions sync.WaitGroup
}

// Option configures a Server.
type Option func(*Server)

// WithStore enables score saving and the scores endpoint.
func WithStore(st *storage.Store) Option {
	return func(s *Server) { s.store = st }
}

// WithCatFacts sets the cat fact client.
func WithCatFacts(c *catfact.Client) Option {
	return func(s *Server) { s.facts = c }
}

// WithContact sets the contact relay client.
func WithContact(c *contact.Client) Option {
	return func(s *Server) { s.contact = c }
}

// WithLogger sets the application logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithAccessLog sets the per-request access logger.
func WithAccessLog(l *zap.SugaredLogger) Option {
	return func(s *Server) { s.access = l }
}

// WithRuntime sets the runtime config every new game is reset with.
// A zero Seed picks a time-based seed per session.
func WithRuntime(cfg core.RuntimeConfig) Option {
	return func(s *Server) { s.runtime = cfg }
}

// WithTicker replaces the tick source of every session.
func WithTicker(f session.TickerFunc) Option {
	return func(s *Server) { s.newTicker = f }
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		runtime:   core.DefaultConfig(),
		newTicker: session.NewTicker,
		base:      context.Background(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.access == nil {
		s.access = zap.NewNop().Sugar()
	}
	if s.facts == nil {
		s.facts = catfact.New(catfact.WithLogger(s.logger))
	}
	if s.contact == nil {
		s.contact = contact.New(config.DefaultContactConfig(), contact.WithLogger(s.logger))
	}
	return s
}

// Handler returns the routed handler wrapped in access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/games", s.handleGames)
	mux.HandleFunc("GET /api/scores/{game}", s.handleScores)
	mux.HandleFunc("GET /api/catfact", s.handleCatFact)
	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("GET /ws", s.handleWS)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /", http.FileServer(http.FS(static)))

	return s.accessLog(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then closes every
// game session and shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.base = ctx

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	err := srv.Shutdown(shutdownCtx)
	cancel()
	s.sessions.Wait()
	return err
}
