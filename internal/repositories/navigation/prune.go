package navigation

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
)

// PruneInput selects the Redis instance swept for stale sessions
type PruneInput struct {
	Client redisclient.Client
	Clock  clock.Clock
	// DryRun reports stale keys without deleting them
	DryRun bool
}

// PruneOutput lists what the sweep found
type PruneOutput struct {
	Checked int
	Stale   []string
	Deleted int
}

// Prune scans every session key and removes entries that no longer decode,
// have no frames, or outlived their recorded expiry.
func Prune(ctx context.Context, input PruneInput) (*PruneOutput, error) {
	if input.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	if input.Clock == nil {
		return nil, errors.InvalidArgument(errClockMissing)
	}

	out := &PruneOutput{}
	now := input.Clock.Now()

	iter := input.Client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := input.Client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// expired between SCAN and GET
			continue
		}
		if err != nil {
			return out, errors.Wrapf(err, "failed to read %s", key)
		}
		out.Checked++

		var session Session
		if err := json.Unmarshal(data, &session); err != nil || len(session.Frames) == 0 || now.After(session.ExpiresAt) {
			out.Stale = append(out.Stale, key)
		}
	}
	if err := iter.Err(); err != nil {
		return out, errors.Wrap(err, "failed to scan sessions")
	}

	if input.DryRun || len(out.Stale) == 0 {
		return out, nil
	}

	removed, err := input.Client.Del(ctx, out.Stale...).Result()
	if err != nil {
		return out, errors.Wrap(err, "failed to delete stale sessions")
	}
	out.Deleted = int(removed)

	return out, nil
}
