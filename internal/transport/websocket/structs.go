package websocket

import (
	"encoding/json"
	"errors"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
)

var (
	errMissingPlayer = errors.New("payload is missing the player")
	errMissingMove   = errors.New("payload is missing the move")
)

type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the single request/response body shared by all actions;
// unused fields stay empty.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Move   *entity.Move   `json:"move,omitempty"`
	Size   int            `json:"size,omitempty"`
	Type   string         `json:"type,omitempty"`
	Error  string         `json:"error,omitempty"`
}
