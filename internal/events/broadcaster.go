// internal/events/broadcaster.go
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Broadcaster publishes typed events on a per-lobby channel. Delivery is
// fire-and-forget: subscribers that miss an event catch up from store
// state, so publish failures are logged and swallowed.
type Broadcaster interface {
	Emit(ctx context.Context, lobbyID, event string, payload interface{})
}

// ChannelName returns the pub/sub channel for a lobby.
func ChannelName(lobbyID string) string {
	return fmt.Sprintf("lobby:%s:events", lobbyID)
}

// RedisBroadcaster fans events out over Redis pub/sub, so every server
// process holding a subscriber for the lobby sees them.
type RedisBroadcaster struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewRedisBroadcaster(rdb *redis.Client, log *logrus.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{rdb: rdb, log: log}
}

// Emit marshals the payload into an Envelope and publishes it.
func (b *RedisBroadcaster) Emit(ctx context.Context, lobbyID, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.log.WithFields(logrus.Fields{"lobby": lobbyID, "event": event}).
			Warnf("failed to marshal event payload: %v", err)
		return
	}
	raw, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		b.log.WithFields(logrus.Fields{"lobby": lobbyID, "event": event}).
			Warnf("failed to marshal event envelope: %v", err)
		return
	}
	if err := b.rdb.Publish(ctx, ChannelName(lobbyID), raw).Err(); err != nil {
		b.log.WithFields(logrus.Fields{"lobby": lobbyID, "event": event}).
			Warnf("failed to publish event: %v", err)
	}
}

// Subscribe opens a subscription on the lobby's channel. The caller owns
// the returned PubSub and must Close it.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, lobbyID string) *redis.PubSub {
	return b.rdb.Subscribe(ctx, ChannelName(lobbyID))
}
