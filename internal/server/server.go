package server

import (
	"context"
	"log/slog"
	"net/http"

	"worldcup-stats-service/internal/app/tables"
	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/config"
	httpserver "worldcup-stats-service/internal/http"
	"worldcup-stats-service/internal/http/handlers"
	"worldcup-stats-service/internal/http/middleware"
	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/poller"
	"worldcup-stats-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	sessions      *store.SessionStore
	poller        Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server whose datasets come from the configured provider.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, loader poller.Loader, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if loader == nil {
		provider, err := newSourceFactory(logger, recorder).build(cfg)
		if err != nil {
			if metricsShutdown != nil {
				_ = metricsShutdown(context.Background())
			}
			return nil, err
		}
		loader = provider
	}

	memoryStore := store.NewMemoryStore()
	sessions := store.NewSessionStore(cfg.Table.MaxSessions, recorder)
	httpSrv := buildHTTPServer(cfg, memoryStore, sessions, logger, recorder)
	plr := poller.New(loader, storeSink{store: memoryStore, view: cfg.Bracket}, logger, cfg.Data.RefreshInterval, cfg.Data.RetryInterval)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		sessions:      sessions,
		poller:        plr,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, loader poller.Loader) *Server {
	memoryStore := store.NewMemoryStore()
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      memoryStore,
		poller:     poller.New(loader, storeSink{store: memoryStore, view: cfg.Bracket}, logger, cfg.Data.RefreshInterval, cfg.Data.RetryInterval),
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, sessions *store.SessionStore, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	tournamentSvc := apptournaments.NewService(memoryStore, chartFrame(cfg.Chart))
	tableSvc := tables.NewService(memoryStore, sessions, logger, recorder)
	handler := handlers.NewHandler(tournamentSvc, tableSvc, logger, memoryStore.Ready)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP servers, then waits for context cancellation to shut down gracefully.
// Until the first load succeeds /ready reports 503 and data endpoints answer 503.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.poller.Start(ctx)
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "poller shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

func chartFrame(v config.ViewConfig) chart.Frame {
	frame := chart.DefaultFrame()
	if v.Width > 0 {
		frame.Width = float64(v.Width)
	}
	if v.Height > 0 {
		frame.Height = float64(v.Height)
	}
	return frame
}
