package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewTracker remembers which viewer already bumped which counter.
type ViewTracker interface {
	// MarkSeen reports true the first time key is seen inside the window.
	MarkSeen(ctx context.Context, key string) (bool, error)
}

type redisViewTracker struct {
	client *redis.Client
	window time.Duration
}

func NewViewTracker(client *redis.Client, window time.Duration) ViewTracker {
	return &redisViewTracker{client: client, window: window}
}

func (t *redisViewTracker) MarkSeen(ctx context.Context, key string) (bool, error) {
	first, err := t.client.SetNX(ctx, key, 1, t.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record view: %w", err)
	}
	return first, nil
}

// EngagementKey builds the de-dup key for one viewer and one counter.
func EngagementKey(kind, counter, contentID, viewer string) string {
	return fmt.Sprintf("engaged:%s:%s:%s:%s", kind, counter, contentID, viewer)
}
