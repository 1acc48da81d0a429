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

// Compile-time check to ensure RedemptionRepository implements the interface
var _ repositories.RedemptionRepository = (*RedemptionRepository)(nil)

// RedemptionRepository holds redemptions in memory
type RedemptionRepository struct {
	mu          sync.RWMutex
	redemptions map[primitive.ObjectID]*models.Redemption
}

// NewRedemptionRepository creates an empty in-memory redemption store
func NewRedemptionRepository() *RedemptionRepository {
	return &RedemptionRepository{
		redemptions: make(map[primitive.ObjectID]*models.Redemption),
	}
}

// Create appends a new redemption record
func (r *RedemptionRepository) Create(ctx context.Context, redemption *models.Redemption) error {
	if redemption.ID.IsZero() {
		redemption.ID = primitive.NewObjectID()
	}
	redemption.CreatedAt = time.Now()
	redemption.UpdatedAt = time.Now()
	if err := redemption.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *redemption
	r.redemptions[redemption.ID] = &clone
	return nil
}

// FindByID finds a redemption by ID
func (r *RedemptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Redemption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	redemption, ok := r.redemptions[id]
	if !ok {
		return nil, models.ErrRedemptionNotFound
	}
	clone := *redemption
	return &clone, nil
}

// FindByQRCode finds a redemption by its scan token
func (r *RedemptionRepository) FindByQRCode(ctx context.Context, token string) (*models.Redemption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, red := range r.redemptions {
		if red.QRCodeData == token {
			clone := *red
			return &clone, nil
		}
	}
	return nil, models.ErrRedemptionNotFound
}

// FindByUserID finds all redemptions belonging to a profile, newest first
func (r *RedemptionRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Redemption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	redemptions := make([]*models.Redemption, 0)
	for _, red := range r.redemptions {
		if red.UserID == userID {
			clone := *red
			redemptions = append(redemptions, &clone)
		}
	}
	sortByNewest(redemptions)
	return redemptions, nil
}

// FindAll retrieves all redemptions, newest first
func (r *RedemptionRepository) FindAll(ctx context.Context) ([]*models.Redemption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	redemptions := make([]*models.Redemption, 0, len(r.redemptions))
	for _, red := range r.redemptions {
		clone := *red
		redemptions = append(redemptions, &clone)
	}
	sortByNewest(redemptions)
	return redemptions, nil
}

// UpdateStatus sets the status of a redemption in place
func (r *RedemptionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RedemptionStatus) error {
	if !status.IsValid() {
		return models.ErrMalformedRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	redemption, ok := r.redemptions[id]
	if !ok {
		return models.ErrRedemptionNotFound
	}
	redemption.Status = status
	redemption.UpdatedAt = time.Now()
	return nil
}

func sortByNewest(redemptions []*models.Redemption) {
	sort.Slice(redemptions, func(i, j int) bool {
		return redemptions[i].CreatedAt.After(redemptions[j].CreatedAt)
	})
}
