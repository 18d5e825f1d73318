// internal/presence/tracker.go
package presence

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/store"
)

// DisconnectTTL is the grace window a disconnected player's record
// survives before the store expires it on its own.
const DisconnectTTL = 30 * time.Second

// Tracker flags players as disconnected with a bounded TTL and clears the
// flag on reconnect. A soft-fail safety net: no heartbeats, just
// timeout-based cleanup via store expiry.
type Tracker struct {
	store store.SessionStore
	coord *lobby.Coordinator
	log   *logrus.Logger
}

func NewTracker(s store.SessionStore, coord *lobby.Coordinator, log *logrus.Logger) *Tracker {
	return &Tracker{store: s, coord: coord, log: log}
}

// MarkDisconnected sets isDisconnected on the player record and arms the
// expiry. If the player never comes back the record simply vanishes.
func (t *Tracker) MarkDisconnected(ctx context.Context, sid string) error {
	p, err := t.coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	p.IsDisconnected = true
	if err := t.coord.SavePlayer(ctx, p); err != nil {
		return err
	}
	if err := t.store.Expire(ctx, store.PlayerMetaKey(sid), DisconnectTTL); err != nil {
		return err
	}
	t.log.WithFields(logrus.Fields{"sid": sid, "lobby": p.LobbyID}).Info("player disconnected")
	return nil
}

// MarkReconnected clears the flag and disarms the expiry.
func (t *Tracker) MarkReconnected(ctx context.Context, sid string) error {
	p, err := t.coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	p.IsDisconnected = false
	if err := t.coord.SavePlayer(ctx, p); err != nil {
		return err
	}
	if err := t.store.Persist(ctx, store.PlayerMetaKey(sid)); err != nil {
		return err
	}
	t.log.WithFields(logrus.Fields{"sid": sid, "lobby": p.LobbyID}).Info("player reconnected")
	return nil
}
