package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-care/internal/app"
	"go-care/internal/config"
	"go-care/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, config.Load()); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
