// internal/store/redis_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestGetSetDel(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v"))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, s.Del(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetOps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SAdd(ctx, "members", "a"))
	require.NoError(t, s.SAdd(ctx, "members", "b"))

	n, err := s.SCard(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	members, err := s.SMembers(ctx, "members")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	require.NoError(t, s.SRem(ctx, "members", "a"))
	popped, err := s.SPop(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, "b", popped)

	_, err = s.SPop(ctx, "members")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpirePersist(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Expire(ctx, "k", 30*time.Second))
	assert.Equal(t, 30*time.Second, mr.TTL("k"))

	require.NoError(t, s.Persist(ctx, "k"))
	assert.Equal(t, time.Duration(0), mr.TTL("k"))
}

func TestEvalRegistersOnFirstMiss(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// The script is unknown to the server, so the first EVALSHA answers
	// NOSCRIPT and the store must fall back to a full EVAL.
	script := NewScript(`return redis.call("SCARD", KEYS[1]) + tonumber(ARGV[1])`)
	require.NoError(t, s.SAdd(ctx, "members", "a"))

	res, err := s.Eval(ctx, script, []string{"members"}, 41)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res)

	// Registered now; EVALSHA succeeds directly.
	res, err = s.Eval(ctx, script, []string{"members"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res)
}

func TestScriptHash(t *testing.T) {
	// SHA1 of "return 1", the digest Redis registers the script under.
	s := NewScript("return 1")
	assert.Equal(t, "e0e1f9fabfc9d4800c877a703b823ac0578ff8db", s.Hash())
	assert.Equal(t, "return 1", s.Src())
}
