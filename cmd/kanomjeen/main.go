// Package main запускает терминальное приложение приёма заказов.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mmeshcher/kanomjeen-system/internal/config"
	"github.com/mmeshcher/kanomjeen-system/internal/repository"
	"github.com/mmeshcher/kanomjeen-system/internal/service"
	"github.com/mmeshcher/kanomjeen-system/internal/ui"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Sugar().Fatalw("configuration error", "error", err.Error())
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ := zapCfg.Build()
	defer logger.Sync()

	sugar := logger.Sugar()

	repo := repository.NewMemoryRepository()
	svc := service.NewService(repo)
	term := ui.New(svc, logger, os.Stdin, os.Stdout, cfg.CurrencyLabel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sugar.Infow("starting order board", "log_level", level.String())

	if err := term.Run(ctx); err != nil {
		sugar.Fatalw("terminal session error", "error", err)
	}

	// Заказы живут только в памяти одной сессии
	sugar.Infow("session finished, orders discarded", "orders", len(svc.Orders()))
}
