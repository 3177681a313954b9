package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-care/internal/app"
	"go-care/internal/bootstrap"
	"go-care/internal/config"
	"go-care/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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
	cfg := config.Load()

	r := gin.New()
	r.Use(gin.Recovery())

	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.RunHTTPServer(ctx, r, cfg.Server, bootstrap.NewStdoutAuditLogger()); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
