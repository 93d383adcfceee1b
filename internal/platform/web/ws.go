package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/session"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 1 << 10
	frameBuf   = 16
)

// inputMessage is what the browser sends: {"action":"left"}.
type inputMessage struct {
	Action string `json:"action"`
}

// conn is one browser playing one game.
type conn struct {
	ws     *websocket.Conn
	runner *session.Runner
	logger *log.Logger
}

// handleWS upgrades /ws?game=<id>[&player=<name>] and runs a fresh game
// for the connection until either side goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	game, err := registry.Create(q.Get("game"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	player := q.Get("player")

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)

	cfg := s.runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	runner := session.New(game,
		session.WithLogger(logger),
		session.WithTicker(s.newTicker),
		session.WithGameOver(s.recordScore(player, logger)),
	)
	frames, unsubscribe := runner.Subscribe(frameBuf)
	c := &conn{ws: ws, runner: runner, logger: logger}

	ctx, cancel := context.WithCancel(s.base)
	s.sessions.Add(1)
	go func() {
		defer s.sessions.Done()
		_ = runner.Run(ctx)
	}()
	go c.writePump(frames)
	go func() {
		c.readPump()
		cancel()
		unsubscribe()
	}()
}

// recordScore saves finished games. It runs on the session goroutine.
func (s *Server) recordScore(player string, logger *log.Logger) func(string, core.GameState) {
	return func(game string, st core.GameState) {
		if s.store == nil || st.Score <= 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := s.store.SaveScore(ctx, game, player, st.Score); err != nil {
			logger.Warn("could not save score", "game", game, "score", st.Score, "error", err)
		}
	}
}

// readPump forwards browser input to the runner until the socket fails.
func (c *conn) readPump() {
	defer c.ws.Close()

	c.ws.SetReadLimit(maxMessage)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read", "error", err)
			}
			return
		}
		var in inputMessage
		if err := json.Unmarshal(payload, &in); err != nil {
			continue
		}
		if a := core.ParseAction(in.Action); a != core.ActionNone {
			c.runner.Send(a)
		}
	}
}

// writePump writes frames and keepalive pings. It is the only writer.
func (c *conn) writePump(frames <-chan session.Frame) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case f, ok := <-frames:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteJSON(f); err != nil {
				return
			}
		case <-ping.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
