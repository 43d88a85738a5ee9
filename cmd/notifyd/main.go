package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	statshandler "github.com/aliskhannn/notifyd/internal/api/handlers/stats"
	"github.com/aliskhannn/notifyd/internal/api/router"
	"github.com/aliskhannn/notifyd/internal/api/server"
	"github.com/aliskhannn/notifyd/internal/bus"
	"github.com/aliskhannn/notifyd/internal/config"
	notifrepo "github.com/aliskhannn/notifyd/internal/repository/notification"
	notifsvc "github.com/aliskhannn/notifyd/internal/service/notification"
	"github.com/aliskhannn/notifyd/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	zlog.Logger.Info().Str("run_id", uuid.NewString()).Msg("starting notifyd")

	repo := notifrepo.NewRepository()
	service := notifsvc.NewService(repo)

	busServer, err := bus.NewServer(bus.NewHandler(service), cfg.Bus.Name, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start bus server")
	}

	heartbeat := worker.NewHeartbeat(service, cfg.Heartbeat.Interval, cfg.Heartbeat.ReportEvery)
	go heartbeat.Run(ctx)

	var s *http.Server
	if cfg.Server.Enabled {
		r := router.New(statshandler.NewHandler(service))
		s = server.New(cfg.Server.HTTPPort, r)

		go func() {
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zlog.Logger.Fatal().Err(err).Msg("failed to start debug server")
			}
		}()
	}

	zlog.Logger.Info().Msg("notification daemon is running")
	zlog.Logger.Info().Msg("test it with: notify-send 'Test' 'This is a test notification'")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	if s != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		zlog.Logger.Info().Msg("shutting down debug server")
		if err := s.Shutdown(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to shutdown debug server")
		}
	}

	if err := busServer.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close bus connection")
	}

	zlog.Logger.Info().Msg("daemon shut down")
}
