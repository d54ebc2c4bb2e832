package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) GetWordList(ctx context.Context) ([]string, error) {
	key := wordListKey()

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrWordListNotLoaded
	}

	return s.client.LRange(ctx, key, 0, -1).Result()
}

func (s *Storage) SaveWordList(ctx context.Context, words []string) error {
	key := wordListKey()

	// Replace the list atomically; a LIST keeps file order, which a SET would lose
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.RPush(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Run operations

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, runKey(run.ID), data, s.cfg.RunTTL)
	pipe.ZAdd(ctx, runsIndexKey(), redis.Z{
		Score:  float64(run.CreatedAt.UnixNano()),
		Member: string(run.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	data, err := s.client.Get(ctx, runKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}

	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Storage) ListRuns(ctx context.Context) ([]*model.Run, error) {
	ids, err := s.client.ZRevRange(ctx, runsIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	runs := make([]*model.Run, 0, len(ids))
	var expired []interface{}
	for _, id := range ids {
		run, err := s.GetRun(ctx, model.RunID(id))
		if err != nil {
			if errors.Is(err, model.ErrRunNotFound) {
				// Run expired via TTL; drop it from the index
				expired = append(expired, id)
				continue
			}
			return nil, err
		}
		runs = append(runs, run)
	}

	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, runsIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}

	return runs, nil
}
