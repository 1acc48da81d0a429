// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. They honor the same contracts as the mongodb package
// and are used by tests and by mock-storage mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure ProfileRepository implements the interface
var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository holds profiles in memory
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[primitive.ObjectID]*models.Profile
}

// NewProfileRepository creates an empty in-memory profile store
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[primitive.ObjectID]*models.Profile),
	}
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	if err := profile.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

// FindByID finds a profile by ID
func (r *ProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

// FindAll retrieves all profiles
func (r *ProfileRepository) FindAll(ctx context.Context) ([]*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		clone := *p
		profiles = append(profiles, &clone)
	}
	return profiles, nil
}

// Update replaces an existing profile
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return models.ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

// Count gets the total number of profiles
func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}
