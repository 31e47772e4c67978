package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/the-debugger2/tic-tac-toe/internal/config"
	"github.com/the-debugger2/tic-tac-toe/internal/repository"
	"github.com/the-debugger2/tic-tac-toe/internal/repository/storage"
	"github.com/the-debugger2/tic-tac-toe/internal/service"
	"github.com/the-debugger2/tic-tac-toe/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Client)
	gameRepo := repository.NewGameRepository(redisStorage.Client)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService, conf.Game.BotDelay())

	wsServer := websocket.New(logger, playerService, gamePlayService, conf.Game.DefaultBoardSize)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", conf.HTTPPort)
		if srvErr := wsServer.Start(ctx, conf.HTTPPort); srvErr != nil {
			errCh <- srvErr
		}
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
