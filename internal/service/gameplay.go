package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, size int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID, gameType string, size int) (*entity.Game, error)
	CurrentGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	// botDelay paces the bot's reply for the presentation layer; it has no
	// effect on correctness and zero disables it.
	botDelay time.Duration
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, botDelay time.Duration) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		botDelay:      botDelay,
	}
}

// MakeTurn applies one human move and, in bot games, the bot's reply. In
// local two-player games the single client drives both marks, so the move
// is made for whichever mark is active.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, fmt.Errorf("cannot make turn: %w", err)
	}

	mark := player.Mark
	if game.Type == entity.PvPType {
		mark = game.Turn
	}

	if err = game.MakeTurn(mark, move.Row, move.Col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() {
		that.pause()

		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, size int) (*entity.Game, error) {
	if player.GameID == "" {
		game, err := that.createGame(ctx, player, gameType, size)
		if err != nil {
			return nil, fmt.Errorf("failed to create new game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// RestartGame replaces the player's session wholesale: the old game is
// discarded and a fresh one is created with the requested configuration.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID, gameType string, size int) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		if game, getErr := that.gameService.GetGameByID(ctx, player.GameID); getErr == nil {
			that.CleanupGame(ctx, game)
		}
		player.GameID = ""
		player.Mark = entity.Empty
	}

	game, err := that.createGame(ctx, player, gameType, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) CurrentGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, gameType string, size int) (*entity.Game, error) {
	game, updatedPlayer, err := that.gameService.CreateGame(ctx, player, gameType, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.CreateOrUpdate(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}

		return game, nil
	}

	// Local two-player game: both marks come from the same client, so
	// there is nobody to wait for.
	game.Status = entity.StatusOngoing
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID)

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	playerMark, botMark := game.GetRandomMarks()
	for _, player := range game.Players {
		if !player.IsBot() {
			player.Mark = playerMark
			if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
		}
	}
	botPlayer.Mark = botMark

	if err := that.playerService.CreateOrUpdate(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if botMark == entity.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		player.GameID = ""
		player.Mark = entity.Empty
		if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}

func (that *gamePlayService) pause() {
	if that.botDelay > 0 {
		time.Sleep(that.botDelay)
	}
}
