package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "reseller-console/internal/config"
	router "reseller-console/internal/http"
	"reseller-console/internal/http/handlers"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.InitLogger(env.AppEnv, env.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var api *handlers.API
	switch env.DataSource {
	case intconfig.DataSourceMySQL:
		db, err := intconfig.ConnectDB(env)
		if err != nil {
			logger.Fatal("connect database", zap.Error(err))
		}
		defer intconfig.CloseDB()
		api = handlers.NewMySQLAPI(env, db)
	case intconfig.DataSourceMock:
		api = handlers.NewMockAPI(env)
	default:
		logger.Fatal("unknown DATA_SOURCE", zap.String("data_source", env.DataSource))
	}

	if env.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set: login and protected routes are disabled")
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr), zap.String("data_source", env.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
