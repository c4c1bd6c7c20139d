package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/kitchen-inventory/internal/config"
	"github.com/rogerio-castellano/kitchen-inventory/internal/db"
	api "github.com/rogerio-castellano/kitchen-inventory/internal/http"
	"github.com/rogerio-castellano/kitchen-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/kitchen-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/kitchen-inventory/internal/logger"
	"github.com/rogerio-castellano/kitchen-inventory/internal/repo"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("could not load configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, database, err := openRepository(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("could not connect to database")
	}
	if database != nil {
		defer database.Close()
	}

	if err := products.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not initialize schema")
	}
	log.Info().
		Str("driver", cfg.Database.Driver).
		Str("host", config.HostPort(cfg.Database.DSN)).
		Msg("database ready")

	var limiter *rl.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.StartVisitorCleanupLoop(ctx)
	}

	var pinger handlers.Pinger
	if database != nil {
		pinger = database
	}
	srv := handlers.NewServer(products, pinger, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(srv, log, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("server running")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openRepository(ctx context.Context, cfg config.Database) (repo.ProductRepository, *sql.DB, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return repo.NewInMemoryProductRepository(), nil, nil
	case config.DriverMySQL:
		database, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewMySQLProductRepository(database, cfg.QueryTimeout), database, nil
	default:
		database, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresProductRepository(database, cfg.QueryTimeout), database, nil
	}
}
