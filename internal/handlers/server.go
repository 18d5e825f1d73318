// internal/handlers/server.go
package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/auth"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/game"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/presence"
)

// Server bundles the components the HTTP and WebSocket handlers dispatch
// into. All shared state lives behind the coordinator's session store, so
// a single Server serves every connection.
type Server struct {
	Coord     *lobby.Coordinator
	Engine    *game.Engine
	Broadcast *events.RedisBroadcaster
	Tracker   *presence.Tracker
	Log       *logrus.Logger
}

func NewServer(coord *lobby.Coordinator, engine *game.Engine, bcast *events.RedisBroadcaster, tracker *presence.Tracker, log *logrus.Logger) *Server {
	return &Server{
		Coord:     coord,
		Engine:    engine,
		Broadcast: bcast,
		Tracker:   tracker,
		Log:       log,
	}
}

// sessionFromRequest resolves the caller's identity triple from the
// session cookie. Token verification is the only auth in the system;
// a valid token whose player record is gone means the session is dead.
func sessionFromRequest(r *http.Request) (auth.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.AuthenticateJWT(cookie.Value)
}
