package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a client for the server named by TEST_REDIS_URL, skipping
// the test when it is not set. Keys written under prefix are deleted when the
// test finishes.
func NewRedis(t *testing.T, prefix string) *redis.Client {
	t.Helper()

	opts, err := redis.ParseURL(requireEnv(t, redisEnv))
	if err != nil {
		t.Fatalf("testutil.NewRedis: parse url: %v", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
		client.Close()
	})
	return client
}
