package services

import (
	"context"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService handles profile-related business logic. Balance changes
// are out of its reach: those go through the LedgerService only.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	grantRepo   repositories.PointGrantRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repositories.ProfileRepository, grantRepo repositories.PointGrantRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		grantRepo:   grantRepo,
	}
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return s.profileRepo.FindByID(ctx, id)
}

// GetAll retrieves all profiles
func (s *ProfileService) GetAll(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.FindAll(ctx)
}

// Create registers a new profile with a zero balance
func (s *ProfileService) Create(ctx context.Context, name string, role models.Role, avatar string) (*models.Profile, error) {
	profile := &models.Profile{
		Name:   name,
		Role:   role,
		Avatar: avatar,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateAvatar changes the avatar reference without touching balances
func (s *ProfileService) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Avatar = avatar
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetRank resolves the profile's rank from its lifetime earned points
func (s *ProfileService) GetRank(ctx context.Context, id primitive.ObjectID) (*models.Profile, models.RankTitle, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, models.RankTitle{}, err
	}
	return profile, models.ResolveRank(profile.TotalEarned), nil
}

// GetGrants retrieves the issuance history for a profile
func (s *ProfileService) GetGrants(ctx context.Context, id primitive.ObjectID) ([]*models.PointGrant, error) {
	if _, err := s.profileRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.grantRepo.FindByUserID(ctx, id)
}

// Count gets the total number of profiles
func (s *ProfileService) Count(ctx context.Context) (int64, error) {
	return s.profileRepo.Count(ctx)
}
