package navigation

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
)

// Key pattern: nav_session:{id}
const sessionKeyPrefix = "nav_session:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument(errClockMissing)
	}
	if c.TTL < 0 {
		return errors.InvalidArgument(errNegativeTTL)
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for navigation sessions
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := r.ttlFor(input.TTL)
	now := r.clock.Now()
	session := &Session{
		ID:        input.ID,
		Frames:    append([]Frame(nil), input.Frames...),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, buildKey(input.ID), data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNotFound).WithMeta("session_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	// Redis expiry and our clock can disagree by a tick
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, buildKey(input.ID))
		return nil, errors.NotFound("navigation session has expired").WithMeta("session_id", input.ID)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := buildKey(input.Session.ID)
	ttl := r.ttlFor(input.TTL)
	var session *Session

	// WATCH fails the MULTI when another writer touches the key after our read
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := r.read(ctx, tx, input.Session.ID)
		if err != nil {
			return err
		}
		if stored.Version != input.Session.Version {
			return staleError(stored.ID, input.Session.Version, stored.Version)
		}

		now := r.clock.Now()
		session = input.Session.Clone()
		session.Version++
		session.UpdatedAt = now
		session.ExpiresAt = now.Add(ttl)

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrap(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return &UpdateOutput{Session: session}, nil
	case err == redis.TxFailedErr:
		return nil, errors.Aborted(errStale).WithMeta("session_id", input.Session.ID)
	default:
		var coded *errors.Error
		if errors.As(err, &coded) {
			return nil, coded
		}
		return nil, errors.Wrap(err, "failed to update session in Redis")
	}
}

// read loads a live session inside a transaction
func (r *redisRepository) read(ctx context.Context, tx *redis.Tx, id string) (*Session, error) {
	data, err := tx.Get(ctx, buildKey(id)).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFound(errNotFound).WithMeta("session_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var stored Session
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	if r.clock.Now().After(stored.ExpiresAt) {
		return nil, errors.NotFound("navigation session has expired").WithMeta("session_id", id)
	}
	return &stored, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func (r *redisRepository) ttlFor(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return r.ttl
}

// buildKey creates the Redis key for a session
func buildKey(id string) string {
	return sessionKeyPrefix + id
}
