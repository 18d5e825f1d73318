// internal/events/broadcaster_test.go
package events

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelName(t *testing.T) {
	assert.Equal(t, "lobby:abc:events", ChannelName("abc"))
}

func TestEmitRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	b := NewRedisBroadcaster(rdb, logger)

	ctx := context.Background()
	sub := b.Subscribe(ctx, "lobby-1")
	t.Cleanup(func() { sub.Close() })

	// Wait for the subscription before publishing or the message is lost.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	b.Emit(ctx, "lobby-1", PlayerScored, CharacterPayload{
		Username:  "player-a",
		Character: "水",
	})

	select {
	case msg := <-sub.Channel():
		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))
		assert.Equal(t, PlayerScored, env.Event)

		var payload CharacterPayload
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		assert.Equal(t, "player-a", payload.Username)
		assert.Equal(t, "水", payload.Character)
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}
