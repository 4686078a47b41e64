package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding every task record
const DefaultRedisKey = "tasks"

type redisTaskStateRepo struct {
	client redis.UniversalClient
	key    string
}

// NewRedisTaskStateRepo stores task records as fields of a single Redis hash
func NewRedisTaskStateRepo(client redis.UniversalClient, key string) *redisTaskStateRepo {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisTaskStateRepo{client: client, key: key}
}

// OpenRedis parses a redis:// URL and checks the server is reachable
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func (r *redisTaskStateRepo) Upsert(ctx context.Context, records []entity.TaskRecord) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]any, 0, len(records)*2)
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode task %s: %w", rec.ID(), err)
		}
		values = append(values, rec.ID(), string(payload))
	}

	if err := r.client.HSet(ctx, r.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to upsert tasks: %w", err)
	}

	return nil
}

func (r *redisTaskStateRepo) Snapshot(ctx context.Context, filter entity.TaskFilter) (map[string]entity.TaskRecord, error) {
	raw, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	states := make(map[string]entity.TaskRecord, len(raw))
	for id, payload := range raw {
		rec, ok := entity.DecodeStoredRecord([]byte(payload))
		if !ok {
			log.Printf("Skipping unreadable task state %s", id)
			continue
		}
		if !filter.Match(rec) {
			continue
		}
		states[rec.ID()] = rec
	}

	return states, nil
}
