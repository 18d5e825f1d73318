// internal/history/history.go
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list the historian service consumes.
var DefaultQueueName = "kanarush_rounds"

// RoundRecord holds the minimal info the historian needs to persist a
// finished round.
type RoundRecord struct {
	LobbyID    string `json:"lobby_id"`
	Winner     string `json:"winner"`
	Alphabet   string `json:"alphabet"`
	Target     int    `json:"target"`
	UsedTimeMs int64  `json:"used_time_ms"`
	FinishedAt int64  `json:"finished_at"`
}

// Recorder accepts finished rounds. Recording is best-effort; callers log
// failures and move on.
type Recorder interface {
	Record(ctx context.Context, rec RoundRecord) error
}

// RedisRecorder pushes records onto a Redis list for the historian to
// drain asynchronously.
type RedisRecorder struct {
	rdb   *redis.Client
	queue string
}

func NewRedisRecorder(rdb *redis.Client) *RedisRecorder {
	queue := os.Getenv("HISTORY_QUEUE_NAME")
	if queue == "" {
		queue = DefaultQueueName
	}
	return &RedisRecorder{rdb: rdb, queue: queue}
}

// Record serializes the round to JSON and RPushes it. This is a single
// quick network send, nothing more.
func (r *RedisRecorder) Record(ctx context.Context, rec RoundRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal RoundRecord: %w", err)
	}
	if err := r.rdb.RPush(ctx, r.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", r.queue, err)
	}
	return nil
}
