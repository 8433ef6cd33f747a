package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/DanRulev/flashdeck.git/internal/api"
	"github.com/DanRulev/flashdeck.git/internal/config"
	"github.com/DanRulev/flashdeck.git/internal/repository"
	"github.com/DanRulev/flashdeck.git/internal/service"
	"github.com/DanRulev/flashdeck.git/internal/storage/db"
	"github.com/DanRulev/flashdeck.git/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.InitServer()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := logger.New(cfg.Env)
	defer logger.Sync()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	if err := db.Migrate(conn.DB, logger); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}

	repos := repository.NewRepository(conn)
	corpus := service.NewCorpusService(repos, logger)
	handler := api.NewHandler(corpus, cfg.App.Timeout, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", zap.Error(err))
	}
	logger.Info("server stopped")
}
