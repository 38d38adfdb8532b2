// @title           Bookings and Login API
// @version         1.0
// @description     Ticket booking API with registration and login.
// @host            localhost:3001
// @BasePath        /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/surendhiran2000/theatre-management/internal/app"
	"github.com/surendhiran2000/theatre-management/internal/config"

	_ "github.com/surendhiran2000/theatre-management/docs"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logrus.Info("config loaded, connecting to MongoDB and Redis...")

	application, err := app.New(cfg)
	if err != nil {
		logrus.Fatalf("app init: %v", err)
	}
	logrus.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		logrus.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}

	if err := application.Close(ctx); err != nil {
		logrus.Errorf("app close: %v", err)
	}
}
