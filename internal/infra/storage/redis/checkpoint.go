package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/walletsync/internal/chainfeed"

	redis "github.com/redis/go-redis/v9"
)

// checkpointKey holds the last block height processed on a network.
//
// Format: "chainfeed:checkpoint:{network}"
func checkpointKey(network string) string {
	return fmt.Sprintf("chainfeed:checkpoint:%s", network)
}

// SaveCheckpoint implements chainfeed.CheckpointStorage. The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height int64) error {
	return c.conn.Set(ctx, checkpointKey(network), height, 0).Err()
}

// LoadLatestCheckpoint implements chainfeed.CheckpointStorage.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (int64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(network)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainfeed.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt checkpoint for %s: %w", network, err)
	}

	return height, nil
}

var _ chainfeed.CheckpointStorage = new(client)
