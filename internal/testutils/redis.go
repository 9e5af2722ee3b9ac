// Package testutils holds shared test helpers: a miniredis-backed client
// and Munchkin fixtures.
package testutils

import (
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/munchkin-api/internal/redis"
)

// RedisKeyPrefix matches the replication store's default key prefix
const RedisKeyPrefix = "munchkin:"

// CreateTestRedisClient creates a client backed by a fresh miniredis
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	return CreateTestRedisClientWithSeed(t, nil)
}

// CreateTestRedisClientWithSeed lets the test store room documents before
// the client connects, as if another node had written them
func CreateTestRedisClientWithSeed(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if seed != nil {
		seed(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr.Close
}

// SeedDocument stores value as JSON under the key used for path
func SeedDocument(t *testing.T, mr *miniredis.Miniredis, path string, value any) {
	raw, err := json.Marshal(value)
	require.NoError(t, err, "failed to encode seed document")
	require.NoError(t, mr.Set(RedisKeyPrefix+path, string(raw)), "failed to seed %s", path)
}
