// internal/handlers/lobby_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/alphabet"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/middleware"
	"github.com/hakubun/kanarush/internal/models"
)

// wsMessage is a client-to-server frame. Event names mirror the lobby
// actions: ready, notready, check-input, skip, change-config, kick, leave.
type wsMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type checkInputData struct {
	Input string `json:"input"`
}

type kickData struct {
	Username string `json:"username"`
}

type changeConfigData struct {
	Target   int    `json:"target"`
	Alphabet string `json:"alphabet"`
}

// errSessionGone signals that the caller's player record vanished
// (kicked, or expired via the disconnect TTL) and the socket must close.
var errSessionGone = errors.New("session gone")

// LobbyWSHandler upgrades the connection, verifies the session cookie,
// and runs the two pumps: lobby events from the broadcaster out to the
// socket, client actions from the socket into the coordinator and engine.
func LobbyWSHandler(logger *logrus.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r)
		if err != nil {
			http.Error(w, "missing or invalid session", http.StatusUnauthorized)
			return
		}
		if _, err := s.Coord.Player(r.Context(), sess.SID); err != nil {
			http.Error(w, "no active session", http.StatusForbidden)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"kanarush"},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// A fresh socket clears any pending disconnect TTL.
		if err := s.Tracker.MarkReconnected(ctx, sess.SID); err != nil {
			logger.Warnf("mark reconnected %s: %v", sess.SID, err)
		}

		sub := s.Broadcast.Subscribe(ctx, sess.LobbyID)
		defer sub.Close()
		go writePump(ctx, c, sub.Channel(), logger)

		left := readPump(ctx, c, s, sess.SID, sess.LobbyID, logger)

		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)

		if left {
			c.Close(websocket.StatusNormalClosure, "left lobby")
			return
		}
		// Socket dropped without an explicit leave; give the player the
		// reconnect grace window before the record expires.
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		if err := s.Tracker.MarkDisconnected(cleanupCtx, sess.SID); err != nil && !errors.Is(err, lobby.ErrNotFound) {
			logger.Warnf("mark disconnected %s: %v", sess.SID, err)
		}
	}
}

// writePump forwards the lobby's event stream to the socket.
func writePump(ctx context.Context, c *websocket.Conn, ch <-chan *redis.Message, logger *logrus.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := c.Write(ctx, websocket.MessageText, []byte(msg.Payload)); err != nil {
				logger.Debugf("ws write failed: %v", err)
				return
			}
		}
	}
}

// readPump decodes client frames and dispatches them until the socket
// closes. Returns true when the client explicitly left the lobby.
func readPump(ctx context.Context, c *websocket.Conn, s *Server, sid, lobbyID string, logger *logrus.Logger) bool {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return false
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debugf("ignoring malformed ws frame from %s", sid)
			continue
		}

		left, err := s.dispatch(ctx, sid, lobbyID, msg)
		if errors.Is(err, errSessionGone) || errors.Is(err, lobby.ErrNotFound) {
			c.Close(websocket.StatusPolicyViolation, "session no longer valid")
			return false
		}
		if err != nil {
			logger.WithFields(logrus.Fields{"sid": sid, "event": msg.Event}).
				Warnf("ws event failed: %v", err)
			continue
		}
		if left {
			return true
		}
	}
}

// dispatch routes one client frame. The second return is true when the
// frame was a leave and the socket should close.
func (s *Server) dispatch(ctx context.Context, sid, lobbyID string, msg wsMessage) (bool, error) {
	switch msg.Event {
	case "ready":
		return false, s.Engine.Ready(ctx, sid)

	case "notready":
		return false, s.Engine.NotReady(ctx, sid)

	case "check-input":
		var d checkInputData
		if err := json.Unmarshal(msg.Data, &d); err != nil || d.Input == "" {
			return false, nil
		}
		return false, s.Engine.CheckInput(ctx, sid, d.Input)

	case "skip":
		return false, s.Engine.Skip(ctx, sid)

	case "change-config":
		var d changeConfigData
		if err := json.Unmarshal(msg.Data, &d); err != nil {
			return false, nil
		}
		if !alphabet.Valid(d.Alphabet) || d.Target < models.MinTarget {
			return false, nil
		}
		applied, err := s.Coord.ChangeConfig(ctx, sid, lobbyID, d.Alphabet, d.Target)
		if err != nil {
			return false, err
		}
		if applied {
			s.Broadcast.Emit(ctx, lobbyID, events.LobbyChangedConfig, events.ConfigPayload{
				Target:   d.Target,
				Alphabet: d.Alphabet,
			})
		}
		return false, nil

	case "kick":
		var d kickData
		if err := json.Unmarshal(msg.Data, &d); err != nil || d.Username == "" {
			return false, nil
		}
		kicked, err := s.Coord.KickPlayer(ctx, sid, d.Username, lobbyID)
		if err != nil {
			return false, err
		}
		if kicked {
			s.Broadcast.Emit(ctx, lobbyID, events.PlayerKicked, events.UsernamePayload{Username: d.Username})
		}
		return false, nil

	case "leave":
		return true, s.handleLeave(ctx, sid, lobbyID)

	default:
		return false, nil
	}
}

// handleLeave removes the player and announces the result: a left event
// always, plus an owner-change event when ownership moved.
func (s *Server) handleLeave(ctx context.Context, sid, lobbyID string) error {
	p, err := s.Coord.Player(ctx, sid)
	if err != nil {
		return errSessionGone
	}
	meta, err := s.Coord.Lobby(ctx, lobbyID)
	if err != nil {
		return err
	}
	before := meta.Owner

	after, err := s.Coord.LeaveLobby(ctx, lobbyID, sid)
	if err != nil {
		return err
	}

	s.Broadcast.Emit(ctx, lobbyID, events.PlayerLeft, events.UsernamePayload{Username: p.Username})

	if after != "" && after != before {
		ownerName, err := s.Coord.Username(ctx, after)
		if err != nil {
			return err
		}
		s.Broadcast.Emit(ctx, lobbyID, events.LobbyChangedOwner, events.UsernamePayload{Username: ownerName})
	}
	return nil
}
