package memory

import (
	"context"
	"sync"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure AdminUserRepository implements the interface
var _ repositories.AdminUserRepository = (*AdminUserRepository)(nil)

// AdminUserRepository holds admin accounts in memory
type AdminUserRepository struct {
	mu     sync.RWMutex
	admins map[string]*models.AdminUser // keyed by email
}

// NewAdminUserRepository creates an empty in-memory admin store
func NewAdminUserRepository() *AdminUserRepository {
	return &AdminUserRepository{
		admins: make(map[string]*models.AdminUser),
	}
}

// Create inserts a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, adminUser *models.AdminUser) error {
	if adminUser.ID.IsZero() {
		adminUser.ID = primitive.NewObjectID()
	}
	adminUser.CreatedAt = time.Now()
	adminUser.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *adminUser
	r.admins[adminUser.Email] = &clone
	return nil
}

// FindByEmail finds an admin user by email. Returns mongo.ErrNoDocuments
// when missing so callers behave the same against either backend.
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adminUser, ok := r.admins[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *adminUser
	return &clone, nil
}

// Count gets the total number of admin users
func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.admins)), nil
}
