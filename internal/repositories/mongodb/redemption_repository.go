package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure RedemptionRepository implements the interface
var _ repositories.RedemptionRepository = (*RedemptionRepository)(nil)

// RedemptionRepository handles MongoDB operations for Redemption
type RedemptionRepository struct {
	collection *mongo.Collection
}

// NewRedemptionRepository creates a new RedemptionRepository
func NewRedemptionRepository(db *mongo.Database) *RedemptionRepository {
	return &RedemptionRepository{
		collection: db.Collection("redemptions"),
	}
}

// Create inserts a new redemption record
func (r *RedemptionRepository) Create(ctx context.Context, redemption *models.Redemption) error {
	if redemption.ID.IsZero() {
		redemption.ID = primitive.NewObjectID()
	}
	redemption.CreatedAt = time.Now()
	redemption.UpdatedAt = time.Now()
	if err := redemption.Validate(); err != nil {
		return err
	}
	_, err := r.collection.InsertOne(ctx, redemption)
	return err
}

// FindByID finds a redemption by ID
func (r *RedemptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Redemption, error) {
	var redemption models.Redemption
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&redemption)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrRedemptionNotFound
		}
		return nil, err
	}
	if err := redemption.Validate(); err != nil {
		return nil, err
	}
	return &redemption, nil
}

// FindByQRCode finds a redemption by its scan token
func (r *RedemptionRepository) FindByQRCode(ctx context.Context, token string) (*models.Redemption, error) {
	var redemption models.Redemption
	filter := bson.M{"qrCodeData": token}
	err := r.collection.FindOne(ctx, filter).Decode(&redemption)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrRedemptionNotFound
		}
		return nil, err
	}
	if err := redemption.Validate(); err != nil {
		return nil, err
	}
	return &redemption, nil
}

// FindByUserID finds all redemptions belonging to a profile, newest first
func (r *RedemptionRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Redemption, error) {
	filter := bson.M{"userId": userID}
	return r.findMany(ctx, filter)
}

// FindAll retrieves all redemptions, newest first
func (r *RedemptionRepository) FindAll(ctx context.Context) ([]*models.Redemption, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *RedemptionRepository) findMany(ctx context.Context, filter bson.M) ([]*models.Redemption, error) {
	var redemptions []*models.Redemption
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &redemptions); err != nil {
		return nil, err
	}
	if redemptions == nil {
		redemptions = []*models.Redemption{}
	}
	for _, red := range redemptions {
		if err := red.Validate(); err != nil {
			return nil, err
		}
	}
	return redemptions, nil
}

// UpdateStatus sets the status of a redemption in place
func (r *RedemptionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RedemptionStatus) error {
	if !status.IsValid() {
		return models.ErrMalformedRecord
	}
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrRedemptionNotFound
	}
	return nil
}
