// Package server exposes the sentence check as a JSON HTTP API.
//
// Endpoints:
//
//	POST /api/check       body: {"sentence":"..."}
//	GET  /api/categories
//	GET  /healthz
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/revelaction/svocheck/analyzer"
	"github.com/revelaction/svocheck/config"
	"github.com/revelaction/svocheck/feedback"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	analyzer *analyzer.Analyzer
	cfg      config.ServerConfig
	logger   *zap.Logger
}

type checkRequest struct {
	Sentence string `json:"sentence"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestId string `json:"request_id,omitempty"`
}

func New(a *analyzer.Analyzer, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{analyzer: a, cfg: cfg, logger: logger}
}

// Handler returns the API handler, CORS included.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(requestId(), accessLog(s.logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/check", s.check)
		api.GET("/categories", s.categories)
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIdHeader},
		ExposedHeaders: []string{requestIdHeader},
	}).Handler(r)
}

// Run serves until ctx is done, then shuts the server down.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "body must be JSON with a 'sentence' field")
		return
	}

	res, err := s.analyzer.Analyze(c.Request.Context(), req.Sentence)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, analyzer.ErrEmptySentence):
		s.fail(c, http.StatusBadRequest, "sentence must not be empty")
	case errors.Is(err, feedback.ErrUnknownCategory):
		s.logger.Error("feedback lookup failed", zap.Error(err))
		s.fail(c, http.StatusInternalServerError, "no feedback available for this sentence")
	default:
		s.logger.Warn("parse failed", zap.Error(err))
		s.fail(c, http.StatusBadGateway, "the sentence could not be parsed")
	}
}

func (s *Server) categories(c *gin.Context) {
	c.JSON(http.StatusOK, feedback.Catalog())
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg, RequestId: c.GetString(requestIdKey)})
}
