package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// guardTTL keeps sent records well past the due window so overlapping and
// rescheduled runs within the same window cannot resend.
const guardTTL = 6 * time.Hour

// RedisSentGuard implements SentGuard on a dedicated Redis DB. A record is a
// SETNX key per (event, member) pair with a TTL.
type RedisSentGuard struct {
	Client *redis.Client
}

// MarkSent atomically claims the (eventID, memberID) pair. It returns true
// when the pair was already claimed by an earlier or concurrent run.
func (g *RedisSentGuard) MarkSent(ctx context.Context, eventID, memberID string) (bool, error) {
	key := fmt.Sprintf("reminder:sent:%s:%s", eventID, memberID)
	set, err := g.Client.SetNX(ctx, key, 1, guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record sent reminder: %w", err)
	}
	return !set, nil
}
