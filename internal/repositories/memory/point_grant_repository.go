package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure PointGrantRepository implements the interface
var _ repositories.PointGrantRepository = (*PointGrantRepository)(nil)

// PointGrantRepository holds grant records in memory
type PointGrantRepository struct {
	mu     sync.RWMutex
	grants []*models.PointGrant
}

// NewPointGrantRepository creates an empty in-memory grant store
func NewPointGrantRepository() *PointGrantRepository {
	return &PointGrantRepository{}
}

// Create appends a new grant record
func (r *PointGrantRepository) Create(ctx context.Context, grant *models.PointGrant) error {
	if grant.ID.IsZero() {
		grant.ID = primitive.NewObjectID()
	}
	grant.CreatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *grant
	r.grants = append(r.grants, &clone)
	return nil
}

// FindByUserID finds all grants issued to a profile, newest first
func (r *PointGrantRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.PointGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grants := make([]*models.PointGrant, 0)
	for _, g := range r.grants {
		if g.UserID == userID {
			clone := *g
			grants = append(grants, &clone)
		}
	}
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].CreatedAt.After(grants[j].CreatedAt)
	})
	return grants, nil
}
