package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/recommend"
	"github.com/Wa1tonGan/food-decider/decider/routes"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql/dao"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		return err
	}
	defer db.Close()

	opts, err := recommend.LoadOptions(cfg.MockProperties)
	if err != nil {
		logging.ErrorLogger.Error("mock properties error", zap.String("path", cfg.MockProperties), zap.Error(err))
		return err
	}
	svc := recommend.NewMockService(opts)
	clients, err := controllers.NewClients(dao.NewLocalEntryDAO(db.DB), svc, cfg.SessionCacheSize)
	if err != nil {
		logging.ErrorLogger.Error("client cache error", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: routes.NewRouter(cfg, db.DB, clients),
	}
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(sigCtx, srv)
}

// serve runs srv until ctx is done, then shuts it down. A listener that
// fails to start or dies returns its error right away.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logging.ErrorLogger.Error("server listen error", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return err
	}
	logging.AppLogger.Info("server shutdown complete")
	return nil
}
