package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
	"github.com/the-debugger2/tic-tac-toe/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a freshly created 3×3 game
	game, err := entity.NewGame("123", entity.WithBotType, 3)
	require.NoError(t, err)

	// When: CreateOrUpdate is called
	err = gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with a couple of moves on the board
		game, err := entity.NewGame("123", entity.PvPType, 5)
		require.NoError(t, err)
		game.Status = entity.StatusOngoing
		require.NoError(t, game.MakeTurn(entity.PlayerX, 2, 2))
		require.NoError(t, game.MakeTurn(entity.PlayerO, 0, 4))

		err = gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game, board included
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Status, retrievedGame.Status)
		require.Equal(t, game.RunLength, retrievedGame.RunLength)
		require.Equal(t, game.Turn, retrievedGame.Turn)
		require.Equal(t, game.Board.Size, retrievedGame.Board.Size)
		assert.Equal(t, game.Board.Cells, retrievedGame.Board.Cells)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored finished game
	game, err := entity.NewGame("123", entity.PvPType, 3)
	require.NoError(t, err)
	game.Status = entity.StatusFinished

	err = gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, game.ID)

	// Then: no error should be returned and the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)
}
