package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"esgcompass/internal/model"
)

// EngagementCache handles Redis operations for gamified engagement
// points: one-time event markers, per-user totals and the global
// leaderboard ZSET.
type EngagementCache interface {
	// MarkOnce records that (userID, marker) happened and reports whether
	// this call was the first occurrence.
	MarkOnce(ctx context.Context, userID, marker string) (bool, error)
	AddPoints(ctx context.Context, userID string, points int) error
	GetPoints(ctx context.Context, userID string) (int, error)
	GetTop(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type engagementCache struct {
	client *redis.Client
}

// NewEngagementCache creates a new engagement cache.
func NewEngagementCache(client *redis.Client) EngagementCache {
	return &engagementCache{client: client}
}

func (c *engagementCache) leaderboardKey() string {
	return "engagement:lb"
}

func (c *engagementCache) markerKey(userID, marker string) string {
	return fmt.Sprintf("engagement:u:%s:once:%s", userID, marker)
}

func (c *engagementCache) MarkOnce(ctx context.Context, userID, marker string) (bool, error) {
	// Markers have no TTL: a started event fires once per draft, ever.
	return c.client.SetNX(ctx, c.markerKey(userID, marker), "1", 0).Result()
}

func (c *engagementCache) AddPoints(ctx context.Context, userID string, points int) error {
	return c.client.ZIncrBy(ctx, c.leaderboardKey(), float64(points), userID).Err()
}

func (c *engagementCache) GetPoints(ctx context.Context, userID string) (int, error) {
	score, err := c.client.ZScore(ctx, c.leaderboardKey(), userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(score), nil
}

func (c *engagementCache) GetTop(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.leaderboardKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = model.LeaderboardEntry{
			UserID: z.Member.(string),
			Points: int(z.Score),
			Rank:   i + 1,
		}
	}
	return entries, nil
}
