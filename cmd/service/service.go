package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workshop-genie/internal/cache"
	"workshop-genie/internal/config"
	"workshop-genie/internal/database"
	"workshop-genie/internal/middleware"
	"workshop-genie/internal/router"
	"workshop-genie/internal/service"
	"workshop-genie/internal/store"
	"workshop-genie/internal/validation"
	"workshop-genie/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定錯誤: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Logger.SetLevel(cfg.LogLevel)
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	deps := router.Deps{AdminAPIKey: cfg.AdminAPIKey}

	var s store.Store
	if cfg.DatabaseURL != "" {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %w", err)
		}
		defer db.Close()
		deps.DB = db
		s = store.NewPostgres(db)
		e.Logger.Info("storage: postgres")
	} else {
		s = store.NewMemory()
		e.Logger.Info("storage: memory")
	}

	if cfg.RedisAddr != "" {
		rc, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer func() {
			if err := rc.Close(); err != nil {
				e.Logger.Warnf("關閉 Redis 連線失敗: %v", err)
			}
		}()
		deps.Cache = rc
		s = store.NewCached(s, rc, cfg.CacheTTL, wp, e.Logger)
		e.Logger.Infof("workshop cache: redis %s, ttl %s", cfg.RedisAddr, cfg.CacheTTL)
	}

	if cfg.SeedWorkshops {
		n, err := store.Seed(context.Background(), s)
		if err != nil {
			return fmt.Errorf("Seed 失敗: %w", err)
		}
		if n > 0 {
			e.Logger.Infof("seeded %d workshops", n)
		}
	}

	deps.Store = s
	deps.Accounts = service.NewAccounts(s, cfg.PasswordMode)
	deps.Bookings = service.NewBookings(s)
	router.Setup(e, deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.HTTPAddr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服務啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
		e.Logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownServer(sctx, e); err != nil {
			return fmt.Errorf("服務關閉失敗: %w", err)
		}
		return nil
	}
}
