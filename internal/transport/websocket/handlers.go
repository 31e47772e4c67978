package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.players.GetOrCreate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == playerID {
		that.logger.Info("player connected", "playerID", player.ID)
	} else {
		that.logger.Info("registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	player, err := that.players.GetByID(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get player: %w", err)
	}

	size := payload.Size
	if size == 0 {
		size = that.defaultBoardSize
	}

	gameType := payload.Type
	if gameType == "" {
		gameType = entity.WithBotType
	}

	game, err := that.gameplay.GetOrCreateGame(ctx, player, gameType, size)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: player, Game: game})
}

func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}
	if payload.Move == nil {
		return errMissingMove
	}

	game, err := that.gameplay.MakeTurn(ctx, payload.Player.ID, *payload.Move)
	if err != nil {
		// The rejected move left the game untouched; hand the current
		// state back together with the reason.
		return that.sendMessage(conn, msg.Action, Payload{Game: game, Error: err.Error()})
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleRestart(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	size := payload.Size
	if size == 0 {
		size = that.defaultBoardSize
	}

	gameType := payload.Type
	if gameType == "" {
		gameType = entity.WithBotType
	}

	game, err := that.gameplay.RestartGame(ctx, payload.Player.ID, gameType, size)
	if err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleStatus(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	game, err := that.gameplay.CurrentGame(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get current game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func parsePayload(msg *Message) (*Payload, error) {
	payload := &Payload{}
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
