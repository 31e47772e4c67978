package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/the-debugger2/tic-tac-toe/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PvPType     = "pvp"
	WithBotType = "bot"
)

// MinBoardSize is the smallest playable grid.
const MinBoardSize = 3

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game holds one session: the board, the per-game configuration derived
// at creation (size, run length, type) and the turn state. Configuration
// is never mutated mid-game; a settings change replaces the whole game.
type Game struct {
	ID          string    `json:"id"`
	Board       *Board    `json:"board"`
	RunLength   int       `json:"run_length"`
	Turn        Mark      `json:"player_turn"`
	Winner      Mark      `json:"winner"`
	WinningLine []Move    `json:"winning_line,omitempty"`
	Status      string    `json:"status"`
	Type        string    `json:"type,omitempty"`
	Players     []*Player `json:"players,omitempty"`
}

// NewGame creates a waiting game on an empty size×size board. The run
// length is derived from the size: three in a row up to 6×6, four above.
func NewGame(id, gameType string, size int) (*Game, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Game{
		ID:        id,
		Board:     NewBoard(size),
		RunLength: RunLengthFor(size),
		Turn:      PlayerX,
		Status:    StatusWaiting,
		Type:      gameType,
	}, nil
}

func RunLengthFor(size int) int {
	if size <= 6 {
		return 3
	}

	return 4
}

// MakeTurn applies one move for playerMark. Every check runs before any
// mutation, so a rejected move leaves the game exactly as it was.
func (that *Game) MakeTurn(playerMark Mark, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(row, col, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState resolves the board after a move: freeze the game on a
// completed run or a full board, otherwise pass the turn over.
func (that *Game) UpdateGameState() {
	if winner, line, ok := DetectWin(that.Board, that.RunLength); ok {
		that.Winner = winner
		that.WinningLine = line
		that.Status = StatusFinished
		that.Turn = Empty
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusFinished
		that.Turn = Empty
		return
	}

	that.Status = StatusOngoing
	that.Turn = that.Turn.Other()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// IsDraw reports a finished game where nobody completed a run.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (Mark, Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
