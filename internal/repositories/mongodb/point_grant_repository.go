package mongodb

import (
	"context"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PointGrantRepository implements the interface
var _ repositories.PointGrantRepository = (*PointGrantRepository)(nil)

// PointGrantRepository handles MongoDB operations for PointGrant
type PointGrantRepository struct {
	collection *mongo.Collection
}

// NewPointGrantRepository creates a new PointGrantRepository
func NewPointGrantRepository(db *mongo.Database) *PointGrantRepository {
	return &PointGrantRepository{
		collection: db.Collection("point_grants"),
	}
}

// Create appends a new grant record
func (r *PointGrantRepository) Create(ctx context.Context, grant *models.PointGrant) error {
	if grant.ID.IsZero() {
		grant.ID = primitive.NewObjectID()
	}
	grant.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, grant)
	return err
}

// FindByUserID finds all grants issued to a profile, newest first
func (r *PointGrantRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.PointGrant, error) {
	var grants []*models.PointGrant
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &grants); err != nil {
		return nil, err
	}
	if grants == nil {
		grants = []*models.PointGrant{}
	}
	return grants, nil
}
