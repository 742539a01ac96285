package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zappabad/bullrush/internal/config"
	gameservice "github.com/zappabad/bullrush/internal/game/service"
	"github.com/zappabad/bullrush/internal/leaderboard"
	"github.com/zappabad/bullrush/internal/server"
	"github.com/zappabad/bullrush/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error", Pretty: true})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting bullrush server")

	board, err := leaderboard.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open leaderboard database")
	}
	defer board.Close()

	sessionCfg := gameservice.DefaultConfig()
	sessionCfg.Seed = cfg.RandomSeed
	session := gameservice.NewSession(sessionCfg, log)

	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		Session: session,
		Board:   board,
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
