package main

import (
	"context"

	"hris-console/internal/app"
	"hris-console/internal/bootstrap"
	"hris-console/internal/config"
	"hris-console/internal/shared/apperror"
	"hris-console/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.RequireAuth(); err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()

	svcs, err := app.NewServices(cfg, log)
	if err != nil {
		log.Fatal("build services failed", zap.Error(err))
	}
	defer svcs.Close()

	// build dependency + routes
	app.BuildApp(r, svcs, cfg, log)

	err = bootstrap.StartHTTPServer(
		context.Background(),
		r,
		bootstrap.ServerConfigFrom(cfg),
		bootstrap.NewStdoutAuditLogger(log),
	)
	if err != nil {
		log.Error("http server stopped", zap.Error(err))
	}
}
