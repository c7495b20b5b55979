package navigation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

func TestPrune(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	clk := clock.NewFixed(start)

	repo, err := navigation.NewRedis(&navigation.RedisConfig{Client: client, Clock: clk, TTL: time.Hour})
	require.NoError(t, err)

	_, err = repo.Create(ctx, navigation.CreateInput{ID: "nav_live", Frames: []navigation.Frame{{Kind: navigation.FrameRegions}}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, navigation.CreateInput{ID: "nav_empty"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, navigation.CreateInput{
		ID:     "nav_old",
		Frames: []navigation.Frame{{Kind: navigation.FrameRegions}},
		TTL:    time.Minute,
	})
	require.NoError(t, err)
	require.NoError(t, mr.Set("nav_session:nav_corrupt", "{not json"))
	require.NoError(t, mr.Set("other:key", "{not json"))

	// past nav_old's recorded expiry while its key survives in Redis
	clk.Advance(2 * time.Minute)

	dry, err := navigation.Prune(ctx, navigation.PruneInput{Client: client, Clock: clk, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 4, dry.Checked)
	assert.ElementsMatch(t, []string{"nav_session:nav_empty", "nav_session:nav_old", "nav_session:nav_corrupt"}, dry.Stale)
	assert.Zero(t, dry.Deleted)
	assert.True(t, mr.Exists("nav_session:nav_corrupt"))

	out, err := navigation.Prune(ctx, navigation.PruneInput{Client: client, Clock: clk})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Deleted)
	assert.True(t, mr.Exists("nav_session:nav_live"))
	assert.False(t, mr.Exists("nav_session:nav_corrupt"))
	assert.True(t, mr.Exists("other:key"))
}

func TestPruneNothingStale(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	out, err := navigation.Prune(context.Background(), navigation.PruneInput{Client: client, Clock: clock.NewFixed(start)})

	require.NoError(t, err)
	assert.Zero(t, out.Checked)
	assert.Empty(t, out.Stale)
}

func TestPruneRequiresClient(t *testing.T) {
	_, err := navigation.Prune(context.Background(), navigation.PruneInput{Clock: clock.NewFixed(start)})
	assert.True(t, errors.IsInvalidArgument(err))
}
