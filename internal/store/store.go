// internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Get when the key is absent and by SPop when
// the set is empty.
var ErrNotFound = errors.New("store: key not found")

// SessionStore abstracts the shared key-value store that holds all lobby
// and player state. It is injected into every component (never a package
// global) so the whole coordinator can run against a fake in tests.
//
// Only Eval is atomic with respect to other callers; every other mutation
// is a plain last-writer-wins write.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error

	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
	SPop(ctx context.Context, key string) (string, error)

	Expire(ctx context.Context, key string, ttl time.Duration) error
	Persist(ctx context.Context, key string) error

	// Eval runs a registered atomic script. The multi-key read-then-write
	// sequence inside the script is indivisible with respect to every other
	// store caller.
	Eval(ctx context.Context, script *Script, keys []string, args ...interface{}) (int64, error)
}

// Key layout. Must be reproduced bit-for-bit to interoperate with
// existing state.

// LobbyMetaKey returns the key holding the serialized Lobby.
func LobbyMetaKey(lobbyID string) string {
	return fmt.Sprintf("lobby:%s:meta", lobbyID)
}

// LobbyPlayersKey returns the key of the lobby's member-sid set.
func LobbyPlayersKey(lobbyID string) string {
	return fmt.Sprintf("lobby:%s:players", lobbyID)
}

// PlayerMetaKey returns the key holding the serialized Player.
func PlayerMetaKey(sid string) string {
	return fmt.Sprintf("player:%s:meta", sid)
}
