package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerService enforces the point-balance and redemption-status rules.
// It is the only component allowed to mutate Points and TotalEarned, and it
// holds its store references explicitly rather than through package state.
//
// Invariants maintained here:
//   - Points never goes negative as a result of any operation
//   - TotalEarned only increases, and only on positive issuance
//   - PointsSpent is fixed at request time
//   - completed and cancelled are terminal redemption states
type LedgerService struct {
	profileRepo    repositories.ProfileRepository
	redemptionRepo repositories.RedemptionRepository
	grantRepo      repositories.PointGrantRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	profileRepo repositories.ProfileRepository,
	redemptionRepo repositories.RedemptionRepository,
	grantRepo repositories.PointGrantRepository,
) *LedgerService {
	return &LedgerService{
		profileRepo:    profileRepo,
		redemptionRepo: redemptionRepo,
		grantRepo:      grantRepo,
	}
}

// IssuePoints credits a profile with points. Amount must be positive:
// negative issuance is rejected outright rather than clamped, so the
// Points >= 0 invariant is enforced at a single choke point. The reason is
// recorded on the grant audit trail only, never on the profile itself.
func (s *LedgerService) IssuePoints(ctx context.Context, profileID primitive.ObjectID, amount int, reason, grantedBy string) (*models.Profile, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Points += amount
	profile.TotalEarned += amount
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	grant := &models.PointGrant{
		UserID:    profileID,
		Amount:    amount,
		Reason:    reason,
		GrantedBy: grantedBy,
	}
	if err := s.grantRepo.Create(ctx, grant); err != nil {
		return nil, err
	}

	return profile, nil
}

// RequestRedemption debits the profile immediately and creates a pending
// redemption (reservation model: points are spent at request time, not at
// fulfillment). The price and name are a snapshot of the product at request
// time and stay fixed for the life of the record.
func (s *LedgerService) RequestRedemption(ctx context.Context, profileID, productID primitive.ObjectID, price int, productName string) (*models.Redemption, error) {
	if price < 0 {
		return nil, models.ErrInvalidAmount
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Points < price {
		return nil, models.ErrInsufficientPoints
	}

	profile.Points -= price
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	redemption := &models.Redemption{
		UserID:      profileID,
		ProductID:   productID,
		ProductName: productName,
		PointsSpent: price,
		Status:      models.RedemptionPending,
		QRCodeData:  uuid.NewString(),
	}
	if err := s.redemptionRepo.Create(ctx, redemption); err != nil {
		return nil, err
	}

	return redemption, nil
}

// ConfirmRedemption transitions a pending redemption to completed. The
// points were already debited at request time, so nothing else moves.
func (s *LedgerService) ConfirmRedemption(ctx context.Context, redemptionID primitive.ObjectID) (*models.Redemption, error) {
	redemption, err := s.redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		return nil, err
	}
	if redemption.Status != models.RedemptionPending {
		return nil, models.ErrInvalidState
	}

	if err := s.redemptionRepo.UpdateStatus(ctx, redemptionID, models.RedemptionCompleted); err != nil {
		return nil, err
	}
	redemption.Status = models.RedemptionCompleted
	return redemption, nil
}

// CancelRedemption transitions a pending redemption to cancelled and
// refunds the reserved points to the owning profile. TotalEarned is not
// touched: a refund is not an earning.
func (s *LedgerService) CancelRedemption(ctx context.Context, redemptionID primitive.ObjectID) (*models.Redemption, error) {
	redemption, err := s.redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		return nil, err
	}
	if redemption.Status != models.RedemptionPending {
		return nil, models.ErrInvalidState
	}

	profile, err := s.profileRepo.FindByID(ctx, redemption.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.redemptionRepo.UpdateStatus(ctx, redemptionID, models.RedemptionCancelled); err != nil {
		return nil, err
	}

	profile.Points += redemption.PointsSpent
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	redemption.Status = models.RedemptionCancelled
	return redemption, nil
}
