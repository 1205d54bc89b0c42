package http

import (
	"bufio"
	"context"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"impostor/internal/app"
	"impostor/internal/config"
	"impostor/internal/transport/ws"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *httprouter.Router
	hub    *app.TableHub
	config *config.Config
	logger *slog.Logger
	webFS  fs.FS
}

// NewServer creates a new HTTP server. webFS must hold a web directory
// with index.html and static assets.
func NewServer(cfg *config.Config, hub *app.TableHub, logger *slog.Logger, webFS fs.FS) *Server {
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		logger.Error("failed to get web subdirectory", "error", err)
	}

	s := &Server{
		router: httprouter.New(),
		hub:    hub,
		config: cfg,
		logger: logger,
		webFS:  webContent,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              cfg.GetAddr(),
		Handler:           s.middleware(s.router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.POST("/api/tables", s.handleCreateTable)
	s.router.GET("/api/tables/:code", s.handleGetTable)
	s.router.GET("/api/tables/:code/qr.png", s.handleTableQR)
	s.router.GET("/api/categories", s.handleCategories)
	s.router.GET("/api/health", s.handleHealth)
	s.router.GET("/api/stats", s.handleStats)

	// WebSocket
	s.router.Handler(http.MethodGet, "/ws", ws.NewHandler(s.hub, s.logger))

	// Static files and SPA
	s.router.GET("/static/*filepath", s.handleStatic)
	s.router.GET("/", s.handleIndex)
	s.router.NotFound = http.HandlerFunc(s.handleSPA)

	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		s.logger.Error("handler panic", "path", r.URL.Path, "panic", i)
		s.sendError(w, http.StatusInternalServerError, app.CodeInternalError, "Internal server error")
	}
}

// middleware wraps the handler with logging and other middleware
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Add CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		// Log request (skip static files in production)
		if s.config.IsDevelopment() || !isStaticRequest(r.URL.Path) {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start),
			)
		}
	})
}

// Handler returns the root handler, middleware included
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for WebSocket support
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Flush implements http.Flusher
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// isStaticRequest checks if the request is for a static file
func isStaticRequest(path string) bool {
	return strings.HasPrefix(path, "/static/")
}
