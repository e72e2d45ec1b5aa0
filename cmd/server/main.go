package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sanyamraina/othello-backend/internal/app"
	"github.com/sanyamraina/othello-backend/internal/bootstrap"
	"github.com/sanyamraina/othello-backend/internal/domain"
	"github.com/sanyamraina/othello-backend/internal/web"
)

func main() {
	logger := newLogger()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Fatal("failed to setup configuration", zap.Error(err))
	}

	svc := app.NewService(logger, domain.NewSelector(nil))
	handler := web.NewServer(svc, logger, cfg.IsLocalCors)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	go func() {
		logger.Infof("server is running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
