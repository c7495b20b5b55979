package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientBadURL(t *testing.T) {
	_, err := redis.NewClient("redis://localhost:notaport", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientAddrAndURL(t *testing.T) {
	mr := miniredis.RunT(t)

	for _, endpoint := range []string{mr.Addr(), "redis://" + mr.Addr() + "/0"} {
		client, err := redis.NewClient(endpoint, &redis.Options{PoolSize: 2})
		require.NoError(t, err)

		require.NoError(t, client.Ping(context.Background()).Err())
		require.NoError(t, client.Close())
	}
}
