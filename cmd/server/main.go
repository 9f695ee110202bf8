package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	httpapi "payment-transactions/internal/api/http"
	"payment-transactions/internal/config"
	"payment-transactions/internal/database"
	"payment-transactions/internal/logging"
	"payment-transactions/internal/repo"
	"payment-transactions/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		ServiceName: "payment-transactions",
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Sync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	var (
		txStore store.Store
		health  httpapi.HealthChecker
	)

	switch cfg.Store {
	case "memory":
		logger.Warn("using in-memory transaction store, data is lost on exit")
		txStore = store.NewMemory()
	default:
		db, err := database.NewPostgres(ctx, cfg.DB.DSN())
		if err != nil {
			return err
		}
		dbService := database.New(db, logger)
		defer dbService.Close()

		if cfg.DB.BootstrapSchema {
			if err := database.Bootstrap(ctx, db, logger); err != nil {
				return err
			}
		}
		txStore = store.NewPostgres(db)
		health = dbService
	}

	transactions := repo.NewTransactionRepo(txStore, logger.Named("transaction_repo"))
	handler := httpapi.NewHandler(transactions, health, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
