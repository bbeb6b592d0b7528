package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/config"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/monitoring"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	log := logger.L()
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work first so no task writes after the server is gone
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

// Run starts the catalog service: database, task queue, export scheduler,
// sessions and the HTTP API.
func Run(cfg *config.Config, version string) error {
	sync := logger.Init(cfg.Log)
	defer sync()
	log := logger.L()

	log.Info("starting library", zap.String("version", version))
	monitoring.Init()

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.FromConfig(cfg.Tasks))
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error("error closing task client", zap.Error(err))
			}
		}()

		taskClient.Register(
			tasks.NewExportCatalogQueue(app.BookRepository, app.CommentRepository, app.NewExporter("")),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	var exportScheduler *scheduler.ExportScheduler
	if taskClient != nil {
		exportScheduler = scheduler.NewExportScheduler(cfg.Export, taskClient)
		if err := exportScheduler.Start(context.Background()); err != nil {
			log.Error("failed to start export scheduler", zap.Error(err))
		}
	} else if cfg.Export.Enabled {
		log.Warn("scheduled export requires the task queue, set TASKS_ENABLED=true")
	}

	sqlDB, err := app.DB.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}
	var sessionManager *auth.SessionManager
	if cfg.Database.Driver == config.DriverSQLite {
		sessionManager, err = auth.NewSessionManager(sqlDB, cfg.Session)
		if err != nil {
			return fmt.Errorf("failed to initialize session manager: %w", err)
		}
	} else {
		// sqlite3store only speaks sqlite
		sessionManager = auth.NewMemorySessionManager(cfg.Session)
	}

	rateLimiter := auth.NewRateLimiter(auth.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RPS,
		Burst:             cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	routerCfg := http_controllers.RouterConfig{
		Database:                app.DB,
		Authors:                 app.Authors,
		Genres:                  app.Genres,
		Books:                   app.Books,
		Comments:                app.Comments,
		Questions:               app.Questions,
		Results:                 app.Results,
		RightAnswersCountToPass: cfg.Quiz.RightAnswersCountToPass,
		SessionManager:          sessionManager,
		RateLimiter:             rateLimiter,
		TaskClient:              taskClient,
		ExportScheduler:         exportScheduler,
		Audit:                   app.Audit,
		DemoMode:                cfg.Global.DemoMode,
		Version:                 version,
	}

	if cfg.Global.DemoMode {
		log.Info("demo mode enabled, catalog is read-only")
	}
	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if exportScheduler != nil {
			exportScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	return Serve(router, cfg, onShutdown)
}
