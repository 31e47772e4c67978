package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("bot plays the winning move", func(t *testing.T) {
		// Given: a bot game where O is the bot and can win down the left column
		game, err := entity.NewGame("000", entity.WithBotType, 3)
		require.NoError(t, err)
		game.Status = entity.StatusOngoing
		game.Turn = entity.PlayerO

		botPlayer := entity.NewBotPlayer(game.ID)
		botPlayer.Mark = entity.PlayerO
		game.Players = []*entity.Player{{ID: "human", Mark: entity.PlayerX}, botPlayer}

		game.Board.Set(0, 0, entity.PlayerO)
		game.Board.Set(1, 0, entity.PlayerO)
		game.Board.Set(0, 1, entity.PlayerX)
		game.Board.Set(0, 2, entity.PlayerX)

		// When: the bot takes its turn
		botService := NewBotService()
		require.NoError(t, botService.MakeTurn(game))

		// Then: the bot completed the column and won
		require.Equal(t, entity.PlayerO, game.Board.At(2, 0))
		require.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerO, game.Winner)
	})

	t.Run("fails when the game has no bot player", func(t *testing.T) {
		// Given: an ongoing game with only human players
		game, err := entity.NewGame("000", entity.PvPType, 3)
		require.NoError(t, err)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{{ID: "human", Mark: entity.PlayerX}}

		// When: the bot service is asked to move
		botService := NewBotService()
		err = botService.MakeTurn(game)

		// Then: ErrBotNotFound
		require.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("fails when it is not the bot's turn", func(t *testing.T) {
		// Given: a bot game with X to move and the bot holding O
		game, err := entity.NewGame("000", entity.WithBotType, 3)
		require.NoError(t, err)
		game.Status = entity.StatusOngoing

		botPlayer := entity.NewBotPlayer(game.ID)
		botPlayer.Mark = entity.PlayerO
		game.Players = []*entity.Player{{ID: "human", Mark: entity.PlayerX}, botPlayer}

		// When: the bot service is asked to move anyway
		botService := NewBotService()
		err = botService.MakeTurn(game)

		// Then: the turn check from the engine surfaces
		require.Error(t, err)
		assert.Len(t, game.Board.EmptyCells(), 9)
	})
}
