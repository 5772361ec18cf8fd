package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/walletscan/internal/analyze"
	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/database"
	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/model"
	"github.com/nao1215/walletscan/internal/pipeline"
	"github.com/nao1215/walletscan/internal/provider"
)

// shutdownTimeout bounds graceful shutdown when the server stops.
const shutdownTimeout = 10 * time.Second

// Scanner runs one wallet analysis and returns the report.
//
// Design decision: The handlers depend on this function type rather than
// on the pipeline directly so tests can substitute a fake scanner without
// standing up provider HTTP servers.
type Scanner func(ctx context.Context, address model.Address, network config.Network) (*model.ExposureReport, error)

// Server is the walletscan HTTP API server.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	scan   Scanner
	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScanner replaces the default pipeline-backed scanner.
func WithScanner(scan Scanner) Option {
	return func(s *Server) {
		if scan != nil {
			s.scan = scan
		}
	}
}

// New creates a Server. When no scanner is injected, scans run the full
// fetch-and-analyze pipeline with a provider set built per request, so
// the requested network never leaks into shared state. The cache may be
// nil to disable caching.
func New(cfg *config.Config, cache *database.Cache, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scan == nil {
		s.scan = newPipelineScanner(cfg, cache, s.logger)
	}

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	s.engine = s.buildRouter()
	return s
}

// newPipelineScanner builds the production Scanner.
func newPipelineScanner(cfg *config.Config, cache *database.Cache, logger *slog.Logger) Scanner {
	registry := labels.NewRegistry(cfg.CustomExchangeLabels, cfg.CustomProtocolLabels)
	analyzer := analyze.NewAnalyzer(registry)

	return func(ctx context.Context, address model.Address, network config.Network) (*model.ExposureReport, error) {
		providers := provider.NewSet(cfg, network, logger)

		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(
			pipeline.NewFetchStep(providers,
				pipeline.WithFetchCache(cache),
				pipeline.WithFetchLogger(logger),
			),
			pipeline.NewAnalyzeStep(analyzer,
				pipeline.WithAnalyzeLogger(logger),
			),
		)

		scan := pipeline.NewScan(address, network)
		if err := p.Execute(ctx, scan); err != nil {
			return nil, err
		}
		return scan.Report, nil
	}
}

// buildRouter assembles the gin engine with middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.requestIDMiddleware())
	engine.Use(s.corsMiddleware())
	engine.Use(s.loggingMiddleware())

	api := engine.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/scan/:address", s.handleScan)
	}

	return engine
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on the configured listen address and blocks
// until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
