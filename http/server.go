package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Maikl76/legislativa"
	"github.com/gin-gonic/gin"
)

// Server timeouts.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 5 * time.Minute
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server exposes the catalog and the question endpoint over HTTP.
type Server struct {
	Asker   legislativa.Asker
	Catalog legislativa.CatalogService
	Logger  *slog.Logger

	router *gin.Engine
	server *http.Server
	ln     net.Listener
	errc   chan error
}

// NewServer creates a Server and registers its routes.
func NewServer(asker legislativa.Asker, catalog legislativa.CatalogService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		Asker:   asker,
		Catalog: catalog,
		Logger:  logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	router.GET("/", s.handleCatalog)
	router.GET("/api/catalog", s.handleCatalog)
	router.POST("/ask", s.handleAsk)
	router.POST("/reload", s.handleReload)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router = router
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on addr and serves requests in the background.
func (s *Server) Open(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.ln = ln
	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	s.errc = make(chan error, 1)

	go func() {
		err := s.server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
		close(s.errc)
	}()

	s.Logger.Info("http server listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the address the server listens on, or "" before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Err returns a channel that receives a serve error, if one occurs, and is
// closed when the server stops.
func (s *Server) Err() <-chan error {
	return s.errc
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.Logger.Info("http server stopped")
	return nil
}

type catalogResponse struct {
	ID        string                  `json:"id"`
	LoadedAt  time.Time               `json:"loaded_at"`
	Documents []*legislativa.Document `json:"documents"`
	Sources   []string                `json:"sources"`
	Status    legislativa.StatusMap   `json:"status"`
}

func (s *Server) handleCatalog(c *gin.Context) {
	catalog := s.Catalog.Catalog()
	c.JSON(http.StatusOK, catalogResponse{
		ID:        catalog.ID,
		LoadedAt:  catalog.LoadedAt,
		Documents: catalog.Documents,
		Sources:   catalog.Sources,
		Status:    catalog.Status,
	})
}

func (s *Server) handleAsk(c *gin.Context) {
	question := strings.TrimSpace(c.PostForm("question"))
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question required"})
		return
	}

	answer, err := s.Asker.Ask(c.Request.Context(), question)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (s *Server) handleReload(c *gin.Context) {
	catalog, err := s.Catalog.Reload(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        catalog.ID,
		"documents": len(catalog.Documents),
	})
}

// error writes err as a JSON error payload with a status derived from its code.
func (s *Server) error(c *gin.Context, err error) {
	_ = c.Error(err)
	code := legislativa.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case legislativa.EINVALID:
		status = http.StatusBadRequest
	case legislativa.ENOTFOUND:
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"error": legislativa.ErrorMessage(err)})
}

// loggerMiddleware logs one line per request.
func loggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			logger.Error("http request", append(attrs, "errors", c.Errors.String())...)
			return
		}
		logger.Info("http request", attrs...)
	}
}
