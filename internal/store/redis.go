// internal/store/redis.go
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultOpTimeout bounds every store call so a slow Redis surfaces an
// error instead of hanging a request.
const defaultOpTimeout = 5 * time.Second

// Connect builds a Redis client from environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
//
// and pings it once before returning.
func Connect() (*redis.Client, error) {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// RedisStore implements SessionStore on top of go-redis.
type RedisStore struct {
	rdb       *redis.Client
	opTimeout time.Duration
}

// NewRedisStore wraps an already-connected client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, opTimeout: defaultOpTimeout}
}

func (s *RedisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis GET %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis DEL: %w", err)
	}
	return nil
}

func (s *RedisStore) SAdd(ctx context.Context, key, member string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.SAdd(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("redis SADD %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) SRem(ctx context.Context, key, member string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.SRem(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("redis SREM %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) SMembers(ctx context.Context, key string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	members, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis SMEMBERS %s: %w", key, err)
	}
	return members, nil
}

func (s *RedisStore) SCard(ctx context.Context, key string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	n, err := s.rdb.SCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis SCARD %s: %w", key, err)
	}
	return n, nil
}

func (s *RedisStore) SPop(ctx context.Context, key string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	member, err := s.rdb.SPop(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis SPOP %s: %w", key, err)
	}
	return member, nil
}

func (s *RedisStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("redis EXPIRE %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Persist(ctx context.Context, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.rdb.Persist(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis PERSIST %s: %w", key, err)
	}
	return nil
}

// Eval executes the script by digest (EVALSHA). When Redis has dropped the
// script from its cache it answers NOSCRIPT; we fall back to a full EVAL
// exactly once, which also re-registers the body. Any other failure
// propagates.
func (s *RedisStore) Eval(ctx context.Context, script *Script, keys []string, args ...interface{}) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.rdb.EvalSha(ctx, script.Hash(), keys, args...).Int64()
	if err == nil {
		return res, nil
	}
	if !redis.HasErrorPrefix(err, "NOSCRIPT") {
		return 0, fmt.Errorf("redis EVALSHA %s: %w", script.Hash(), err)
	}

	res, err = s.rdb.Eval(ctx, script.Src(), keys, args...).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis EVAL: %w", err)
	}
	return res, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
