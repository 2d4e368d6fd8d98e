package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlers "github.com/GriffinCanCode/fishkit/internal/api/http"
	"github.com/GriffinCanCode/fishkit/internal/api/middleware"
	"github.com/GriffinCanCode/fishkit/internal/generate"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/config"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/providers/common"
	"github.com/GriffinCanCode/fishkit/internal/providers/data"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/internal/service"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	registry   *service.Registry
	store      *refdata.Store
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
	stopUptime context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Initializing fishkit server",
		zap.String("port", cfg.Server.Port),
		zap.String("refdata_path", cfg.RefData.Path),
		zap.Bool("refdata_seed", cfg.RefData.Seed),
	)

	// Metrics get their own registry so tests can build several servers
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(promRegistry)
	logger.Info("Performance monitoring initialized")

	store, err := refdata.Open(ctx, refdata.Options{
		Path:   cfg.RefData.Path,
		Seed:   cfg.RefData.Seed,
		Logger: logger,
	})
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("failed to open reference data: %w", err)
	}

	generator := generate.NewGenerator(store, logger,
		generate.WithMaxBatch(cfg.Generator.MaxBatch),
		generate.WithHasher(utils.NewKeyedHasher([]byte(cfg.Generator.FingerprintKey))),
	)

	serviceRegistry := service.NewRegistry(logger, metrics)
	logger.Info("Registering service providers...")
	if err := registerProviders(serviceRegistry, store, generator, metrics); err != nil {
		store.Close()
		logger.Sync()
		return nil, err
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.Origins = cfg.Server.CORSOrigins
	router.Use(middleware.CORS(corsConfig))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers.NewHandlers(serviceRegistry, store, metrics, logger).Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	uptimeCtx, stopUptime := context.WithCancel(context.Background())
	go metrics.RunUptime(uptimeCtx)

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		registry:   serviceRegistry,
		store:      store,
		logger:     logger,
		config:     cfg,
		metrics:    metrics,
		stopUptime: stopUptime,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops. A clean Shutdown
// returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

// Close releases the reference store and flushes logs
func (s *Server) Close() error {
	s.logger.Info("Closing server resources...")
	s.stopUptime()

	var err error
	if cerr := s.store.Close(); cerr != nil {
		s.logger.Error("Failed to close reference data", zap.Error(cerr))
		err = fmt.Errorf("failed to close reference data: %w", cerr)
	}

	s.logger.Sync()
	return err
}

func registerProviders(registry *service.Registry, store *refdata.Store, generator *generate.Generator, metrics *monitoring.Metrics) error {
	// Data provider
	if err := registry.Register(data.NewProvider(store, generator, metrics)); err != nil {
		return fmt.Errorf("failed to register data provider: %w", err)
	}

	// Common provider
	if err := registry.Register(common.NewProvider()); err != nil {
		return fmt.Errorf("failed to register common provider: %w", err)
	}
	return nil
}
