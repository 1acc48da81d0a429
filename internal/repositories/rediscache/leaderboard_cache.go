// Package rediscache caches computed leaderboard snapshots in Redis so the
// roster view does not rescan the profiles collection on every request.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no snapshot is cached
var ErrCacheMiss = errors.New("leaderboard cache miss")

const leaderboardKey = "leaderboard:snapshot"

// LeaderboardEntry is one row of the cached leaderboard
type LeaderboardEntry struct {
	Position    int              `json:"position"`
	ProfileID   string           `json:"profileId"`
	Name        string           `json:"name"`
	Avatar      string           `json:"avatar,omitempty"`
	Points      int              `json:"points"`
	TotalEarned int              `json:"totalEarned"`
	Rank        models.RankTitle `json:"rank"`
}

// LeaderboardCache stores leaderboard snapshots with a TTL
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache creates a new LeaderboardCache
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &LeaderboardCache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot, or ErrCacheMiss when absent
func (c *LeaderboardCache) Get(ctx context.Context) ([]LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt snapshot is treated as a miss so it gets rebuilt
		return nil, ErrCacheMiss
	}
	return entries, nil
}

// Set stores a fresh snapshot
func (c *LeaderboardCache) Set(ctx context.Context, entries []LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

// Invalidate drops the snapshot after a ledger mutation
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
