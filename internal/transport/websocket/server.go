package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/the-debugger2/tic-tac-toe/internal/entity"
	"github.com/the-debugger2/tic-tac-toe/pkg/handlers"
)

type playerService interface {
	GetOrCreate(ctx context.Context, id string) (*entity.Player, error)
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, size int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID, gameType string, size int) (*entity.Game, error)
	CurrentGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, message *Message) error

// Server speaks the presentation-layer protocol: JSON action messages over
// a websocket, one connection per client.
type Server struct {
	logger   *slog.Logger
	players  playerService
	gameplay gamePlayService

	defaultBoardSize int

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, players playerService, gameplay gamePlayService, defaultBoardSize int) *Server {
	server := &Server{
		logger:           logger,
		players:          players,
		gameplay:         gameplay,
		defaultBoardSize: defaultBoardSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:turn"] = server.handleTurn
	server.handlers["game:restart"] = server.handleRestart
	server.handlers["game:status"] = server.handleStatus

	return server
}

// Start serves /ws and /ping until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})
	mux.HandleFunc("/ping", handlers.PingHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("websocket connection established", "remote", conn.RemoteAddr())

	that.handleMessages(ctx, conn)
}

func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("failed to read message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(conn, message.Action, errors.New("unknown action"))
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("failed to process message", "action", message.Action, "error", err)
			that.sendError(conn, message.Action, err)
		}
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadJSON,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, responseJSON); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action string, sendErr error) {
	if err := that.sendMessage(conn, action, Payload{Error: sendErr.Error()}); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}
