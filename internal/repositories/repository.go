package repositories

import (
	"context"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	FindAll(ctx context.Context) ([]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Count(ctx context.Context) (int64, error)
}

// RedemptionRepository defines the interface for redemption data operations.
// Creation is append-only; status is the only field updated in place.
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *models.Redemption) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Redemption, error)
	FindByQRCode(ctx context.Context, token string) (*models.Redemption, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Redemption, error)
	FindAll(ctx context.Context) ([]*models.Redemption, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RedemptionStatus) error
}

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}

// PointGrantRepository defines the interface for the issuance audit trail
type PointGrantRepository interface {
	Create(ctx context.Context, grant *models.PointGrant) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.PointGrant, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
