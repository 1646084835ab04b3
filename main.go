package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mission_control/viewer/client"
	"mission_control/viewer/config"
	"mission_control/viewer/diagnostics"
	"mission_control/viewer/handlers"
	"mission_control/viewer/rabbitmq"
	"mission_control/viewer/views"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.NewConfig()
	if err != nil {
		zap.L().Fatal("failed to get config", zap.Error(err))
	}

	missionClient := client.NewClient(cfg.MissionViewingURL(),
		client.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
		client.WithServiceToken(cfg.GetJWTSecret(), cfg.ServiceName),
	)

	var sink diagnostics.Sink = diagnostics.LogSink{Logger: logger}
	if cfg.RabbitMQURL != "" {
		conn, ch, err := rabbitmq.SetupRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			zap.L().Fatal("failed to set up RabbitMQ", zap.Error(err))
		}
		defer closeRabbitMQ(conn, ch)
		sink = diagnostics.Multi{sink, diagnostics.AMQPSink{Channel: ch, Logger: logger}}
		zap.L().Info("publishing diagnostics", zap.String("queue", rabbitmq.DiagnosticsQueue))
	}

	renderer, err := views.NewRenderer(cfg.DateLayout)
	if err != nil {
		zap.L().Fatal("failed to load templates", zap.Error(err))
	}
	pages := handlers.NewPages(missionClient, sink, renderer, cfg.LoadWait)

	const defaultTimeout = 5 * time.Second
	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handlers.NewRouter(pages),
		ReadHeaderTimeout: defaultTimeout,
	}
	admin := &http.Server{
		Addr:              ":" + cfg.AdminPort,
		Handler:           handlers.NewAdminMux(),
		ReadHeaderTimeout: defaultTimeout,
	}

	for _, srv := range []*http.Server{server, admin} {
		go func(srv *http.Server) {
			zap.L().Info("listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zap.L().Fatal("failed to start server", zap.String("addr", srv.Addr), zap.Error(err))
			}
		}(srv)
	}

	gracefulShutdown(server, admin)
}

func gracefulShutdown(servers ...*http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	zap.L().Info("shutdown signal received")

	const defaultShutdownTTL = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTTL)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			zap.L().Error("failed to shutdown HTTP server", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}
	zap.L().Info("shutdown completed")
}

func closeRabbitMQ(conn *amqp.Connection, ch *amqp.Channel) {
	if err := ch.Close(); err != nil {
		zap.L().Warn("failed to close channel", zap.Error(err))
	}
	if err := conn.Close(); err != nil {
		zap.L().Warn("failed to close connection", zap.Error(err))
	}
}
