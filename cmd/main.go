package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/DanRulev/flashdeck.git/internal/bot"
	"github.com/DanRulev/flashdeck.git/internal/client"
	"github.com/DanRulev/flashdeck.git/internal/config"
	"github.com/DanRulev/flashdeck.git/internal/service"
	"github.com/DanRulev/flashdeck.git/internal/storage/cache"
	"github.com/DanRulev/flashdeck.git/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.InitBot()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := logger.New(cfg.Env)
	defer logger.Sync()

	clients := client.InitClients(cfg.Entries.URL, cfg.Entries.Timeout)
	services := service.InitServices(clients, cfg.Entries.Count, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.Entries.DefaultCorpus, cfg.App.Timeout, services, cache, logger)
	if err != nil {
		logger.Fatal("failed init bot", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		handler.Stop()
	}()

	handler.Start()
}
