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
)

// Compile-time check to ensure ProfileRepository implements the interface
var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository handles MongoDB operations for Profile
type ProfileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection("profiles"),
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
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

// FindByID finds a profile by ID
func (r *ProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrProfileNotFound
		}
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAll retrieves all profiles
func (r *ProfileRepository) FindAll(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []*models.Profile{}
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

// Update updates an existing profile
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	profile.UpdatedAt = time.Now()
	filter := bson.M{"_id": profile.ID}
	update := bson.M{"$set": profile}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrProfileNotFound
	}
	return nil
}

// Count gets the total number of profiles
func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
