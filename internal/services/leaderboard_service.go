package services

import (
	"context"
	"sort"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"github.com/neo11221/wenhong-cramschool/internal/repositories/rediscache"
)

// LeaderboardService builds the student roster ordered by lifetime earned
// points. When a Redis cache is configured it serves snapshots from there;
// without one it falls back to scanning the profile store directly.
type LeaderboardService struct {
	profileRepo repositories.ProfileRepository
	cache       *rediscache.LeaderboardCache
}

// NewLeaderboardService creates a new LeaderboardService. cache may be nil.
func NewLeaderboardService(profileRepo repositories.ProfileRepository, cache *rediscache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// Get returns the current leaderboard, cached when possible
func (s *LeaderboardService) Get(ctx context.Context) ([]rediscache.LeaderboardEntry, error) {
	if s.cache != nil {
		if entries, err := s.cache.Get(ctx); err == nil {
			return entries, nil
		}
	}

	entries, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort: a failed cache write must not fail the read
		_ = s.cache.Set(ctx, entries)
	}
	return entries, nil
}

// Invalidate drops the cached snapshot after a ledger mutation
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func (s *LeaderboardService) build(ctx context.Context) ([]rediscache.LeaderboardEntry, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	students := make([]*models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Role == models.RoleStudent {
			students = append(students, p)
		}
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].TotalEarned != students[j].TotalEarned {
			return students[i].TotalEarned > students[j].TotalEarned
		}
		return students[i].Name < students[j].Name
	})

	entries := make([]rediscache.LeaderboardEntry, 0, len(students))
	for i, p := range students {
		entries = append(entries, rediscache.LeaderboardEntry{
			Position:    i + 1,
			ProfileID:   p.ID.Hex(),
			Name:        p.Name,
			Avatar:      p.Avatar,
			Points:      p.Points,
			TotalEarned: p.TotalEarned,
			Rank:        models.ResolveRank(p.TotalEarned),
		})
	}
	return entries, nil
}
