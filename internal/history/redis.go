package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
)

const redisKeyPrefix = "screener:history:"

// RedisStore keeps one list per cadence, entries JSON-encoded in
// chronological order.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})}
}

// Load reads every cadence list. Missing keys yield empty sequences.
func (s *RedisStore) Load(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()
	for _, c := range models.AllCadences() {
		vals, err := s.rdb.LRange(ctx, redisKeyPrefix+string(c), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("loading %s history: %w", c, err)
		}
		for _, v := range vals {
			var e models.HistoryEntry
			if err := json.Unmarshal([]byte(v), &e); err != nil {
				continue
			}
			snap.Entries[c] = append(snap.Entries[c], e)
		}
	}
	return snap, nil
}

// Save rewrites every cadence list atomically in one pipeline.
func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	pipe := s.rdb.TxPipeline()
	for _, c := range models.AllCadences() {
		key := redisKeyPrefix + string(c)
		pipe.Del(ctx, key)
		for _, e := range snap.Entries[c] {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encoding entry: %w", err)
			}
			pipe.RPush(ctx, key, data)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error { return s.rdb.Close() }
