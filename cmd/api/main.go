package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/auth-service/internal/api/http"
	"github.com/spec-kit/auth-service/internal/api/http/handlers"
	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/observability"
	"github.com/spec-kit/auth-service/internal/persistence"
	"github.com/spec-kit/auth-service/internal/repository"
	"github.com/spec-kit/auth-service/internal/service"
	"github.com/spec-kit/auth-service/internal/worker"
)

// stores holds the selected persistence backend.
type stores struct {
	users   repository.UserRepository
	revoked repository.RevokedTokenRepository
	db      handlers.Pinger
	close   func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer st.close()

	deps := map[string]handlers.Pinger{"database": st.db}
	revoked := st.revoked
	if redis := persistence.NewRedis(cfg.Redis, logger); redis != nil {
		defer redis.Close()
		revoked = repository.NewCachedRevokedTokenRepository(revoked, redis.Client, cfg.Redis.KeyPrefix, logger)
		deps["redis"] = redis
	}

	userService, err := service.NewUserService(st.users, cfg.Auth.BcryptCost, logger)
	if err != nil {
		logger.Fatal("failed to init user service", zap.Error(err))
	}
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	tokenService := service.NewTokenService(tokenManager, revoked, logger)
	authService := service.NewAuthService(userService, tokenService)

	if interval := cfg.Auth.RevocationSweepInterval(); interval > 0 {
		go worker.NewRevocationSweeper(revoked, interval, logger).Run(ctx)
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, deps),
		Users:          handlers.NewUsersHandler(authService),
		Profile:        handlers.NewProfileHandler(userService),
		AuthMiddleware: auth.NewAuthMiddleware(tokenService),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

// openStores connects to Postgres when a DSN is configured and falls back to SQLite otherwise.
func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.Postgres.DSN != "" {
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		pool := pg.PoolHandle()
		return &stores{
			users:   repository.NewUserRepository(pool),
			revoked: repository.NewRevokedTokenRepository(pool),
			db:      pg,
			close:   pg.Close,
		}, nil
	}

	db, err := persistence.NewSQLite(cfg.SQLite, logger, repository.SQLiteModels()...)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:   repository.NewSQLiteUserRepository(db.DB),
		revoked: repository.NewSQLiteRevokedTokenRepository(db.DB),
		db:      db,
		close:   db.Close,
	}, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
