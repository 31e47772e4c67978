package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
	"github.com/the-debugger2/tic-tac-toe/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

func NewBotService() BotService {
	return &botService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // move selection needs no crypto randomness
	}
}

// MakeTurn computes and applies one move for the bot player of the game.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, err := tictactoe.ComputeMove(game, botPlayer.Mark, that.rng)
	if err != nil {
		return fmt.Errorf("failed to compute bot move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Row, move.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
