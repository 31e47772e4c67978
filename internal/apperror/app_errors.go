package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size must be at least 3")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("cell is out of board range")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNoActiveGames    = errors.New("no active games")
)
