package preview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bferrors "github.com/blockforge-dev/blockforge/internal/errors"
	"github.com/blockforge-dev/blockforge/pkg/blocks"
	"github.com/blockforge-dev/blockforge/pkg/element"
	"github.com/blockforge-dev/blockforge/pkg/middleware"
	"github.com/blockforge-dev/blockforge/pkg/serialize"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default ":8654").
	Address string

	// Registry resolves block types for /render/blocks.
	// Defaults to blocks.DefaultRegistry().
	Registry *blocks.Registry

	// MaxBodySize limits request bodies in bytes (default 1 MiB).
	MaxBodySize int64

	// ReadHeaderTimeout guards against slow clients (default 5s).
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default preview server configuration.
func DefaultConfig() Config {
	return Config{
		Address:           ":8654",
		Registry:          blocks.DefaultRegistry(),
		MaxBodySize:       1 << 20,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server is the content preview HTTP server. It renders submitted
// documents to markup and pushes results to connected live previews.
type Server struct {
	config     Config
	hub        *Hub
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a preview server, filling unset config fields with
// defaults.
func New(config Config) *Server {
	defaults := DefaultConfig()
	if config.Address == "" {
		config.Address = defaults.Address
	}
	if config.Registry == nil {
		config.Registry = defaults.Registry
	}
	if config.MaxBodySize == 0 {
		config.MaxBodySize = defaults.MaxBodySize
	}
	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	s := &Server{
		config: config,
		hub:    NewHub(),
		logger: slog.Default().With("component", "preview"),
	}
	s.httpServer = &http.Server{
		Addr:              config.Address,
		Handler:           s.routes(),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the server's HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Hub returns the live-preview hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry())

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/render", s.handleRenderTree)
	r.Post("/render/blocks", s.handleRenderBlocks)
	r.Get("/ws", s.hub.HandleWebSocket)
	return r
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "address", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		s.logger.Info("preview server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.ClientCount(),
	})
}

// handleRenderTree renders a stored element tree: the request body is
// the tree's JSON form, the response is markup text.
func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, bferrors.New("E301").Wrap(err))
		return
	}

	node, err := element.DecodeNode(body)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, bferrors.New("E101").Wrap(err))
		return
	}

	s.writeMarkup(w, r, node)
}

// handleRenderBlocks renders a block document: the request body is a
// JSON array of blocks resolved through the configured registry.
func (s *Server) handleRenderBlocks(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, bferrors.New("E301").Wrap(err))
		return
	}

	var doc []blocks.Block
	if err := json.Unmarshal(body, &doc); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, bferrors.New("E102").Wrap(err))
		return
	}

	s.writeMarkup(w, r, s.config.Registry.RenderAll(doc))
}

// writeMarkup serializes the node, responds with it and pushes it to
// live previews. Query parameters: beautify=1 enables indentation,
// page=1 wraps the fragment in a full document, title sets its title.
func (s *Server) writeMarkup(w http.ResponseWriter, r *http.Request, node *element.Node) {
	query := r.URL.Query()
	serializer := serialize.New(serialize.Config{
		Beautify: query.Get("beautify") == "1",
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if query.Get("page") == "1" {
		doc := serialize.Document{
			Body:  node,
			Title: query.Get("title"),
		}
		if err := serializer.RenderDocument(w, doc); err != nil {
			s.logger.Error("document write failed", "error", err)
		}
		return
	}

	html := serializer.RenderToString(node)
	if _, err := io.WriteString(w, html); err != nil {
		s.logger.Error("response write failed", "error", err)
		return
	}
	s.hub.NotifyContent(html)
}

// writeError responds with the structured error's code, message and
// suggestion as JSON.
func (s *Server) writeError(w http.ResponseWriter, status int, err *bferrors.Error) {
	s.logger.Warn("request rejected", "code", err.Code, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":       err.Code,
		"error":      err.Message,
		"suggestion": err.Suggestion,
	})
}
