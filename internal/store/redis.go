package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/attune-health/attune/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "attune:ctx:"
	redisMaxRetries = 5
)

// ErrTooMuchContention is returned when an optimistic read-modify-write
// cannot commit within the retry budget.
var ErrTooMuchContention = errors.New("context update retries exhausted")

// RedisStore keeps conversation contexts in Redis as JSON values with a
// TTL. Updates use WATCH-based optimistic transactions so concurrent turns
// for the same session cannot drop each other's changes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis instance at url (redis:// form) and
// verifies the connection.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultContextTTL
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.ConversationContext, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrContextNotFound
		}
		return nil, err
	}

	var cc domain.ConversationContext
	if err := json.Unmarshal(data, &cc); err != nil {
		return nil, fmt.Errorf("unmarshal context: %w", err)
	}
	normalizeContext(&cc)
	return &cc, nil
}

func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(*domain.ConversationContext)) (*domain.ConversationContext, error) {
	key := redisKeyPrefix + sessionID
	var updated *domain.ConversationContext

	txn := func(tx *redis.Tx) error {
		cc := domain.NewConversationContext(sessionID)
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cc); err != nil {
				return fmt.Errorf("unmarshal context: %w", err)
			}
		case !errors.Is(err, redis.Nil):
			return err
		}

		fn(cc)
		cc.UpdatedAt = time.Now().UTC()

		payload, err := json.Marshal(cc)
		if err != nil {
			return fmt.Errorf("marshal context: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		if err == nil {
			updated = cc
		}
		return err
	}

	for i := 0; i < redisMaxRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, ErrTooMuchContention
}

func (s *RedisStore) Evict(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, redisKeyPrefix+sessionID).Err()
}

// PruneExpired is a no-op: Redis expires keys natively via the TTL.
func (s *RedisStore) PruneExpired(ctx context.Context) (int, error) {
	return 0, nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
