package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/app"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/config"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/nativelog"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Path to dotenv file")
	flag.Parse()

	logger, level := buildLogger(nativelog.ResolveDir())
	defer logger.Sync()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load env file", zap.String("path", *envFile), zap.Error(err))
	}

	logger.Info("Starting InsightGUIDE API")
	cfg, err := config.Load(os.LookupEnv, logger)
	if err != nil {
		logger.Error("failed to start application", zap.Error(err))
		os.Exit(1)
	}
	if lvl, err := nativelog.ParseLevel(cfg.LogLevel); err == nil {
		level.SetLevel(lvl)
	}

	application, err := app.New(logger, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}
	logger.Info("Application initialized successfully")

	srv := &http.Server{
		Addr:    application.Addr(),
		Handler: application.Router(),
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down InsightGUIDE API")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

// buildLogger falls back to a stdout-only production logger when the log
// directory is unusable. The returned level controls either logger.
func buildLogger(dir string) (*zap.Logger, zap.AtomicLevel) {
	logger, level, err := nativelog.NewZapLogger(dir)
	if err == nil {
		return logger, level
	}

	prodCfg := zap.NewProductionConfig()
	logger, buildErr := prodCfg.Build()
	if buildErr != nil {
		logger = zap.NewNop()
	}
	logger.Warn("log file unavailable, fallback to zap production logger", zap.Error(err))
	return logger, prodCfg.Level
}
