package services

import (
	"context"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedemptionService orchestrates the redemption flow: it resolves the
// catalog product, keeps stock in line with the redemption lifecycle, and
// delegates all point movement and status transitions to the ledger.
type RedemptionService struct {
	ledger         *LedgerService
	redemptionRepo repositories.RedemptionRepository
	productRepo    repositories.ProductRepository
}

// NewRedemptionService creates a new RedemptionService
func NewRedemptionService(
	ledger *LedgerService,
	redemptionRepo repositories.RedemptionRepository,
	productRepo repositories.ProductRepository,
) *RedemptionService {
	return &RedemptionService{
		ledger:         ledger,
		redemptionRepo: redemptionRepo,
		productRepo:    productRepo,
	}
}

// Request creates a pending redemption for a catalog product. The price
// and name passed to the ledger are the catalog snapshot at this moment.
func (s *RedemptionService) Request(ctx context.Context, profileID, productID primitive.ObjectID) (*models.Redemption, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock <= 0 {
		return nil, models.ErrOutOfStock
	}

	redemption, err := s.ledger.RequestRedemption(ctx, profileID, productID, product.Price, product.Name)
	if err != nil {
		return nil, err
	}

	product.Stock--
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return redemption, nil
}

// Confirm marks a pending redemption as fulfilled
func (s *RedemptionService) Confirm(ctx context.Context, redemptionID primitive.ObjectID) (*models.Redemption, error) {
	return s.ledger.ConfirmRedemption(ctx, redemptionID)
}

// Cancel cancels a pending redemption, refunds the points, and returns
// the reserved item to stock.
func (s *RedemptionService) Cancel(ctx context.Context, redemptionID primitive.ObjectID) (*models.Redemption, error) {
	redemption, err := s.ledger.CancelRedemption(ctx, redemptionID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, redemption.ProductID)
	if err == nil {
		product.Stock++
		if err := s.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}
	}

	return redemption, nil
}

// GetByID retrieves a redemption by ID
func (s *RedemptionService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Redemption, error) {
	return s.redemptionRepo.FindByID(ctx, id)
}

// GetByQRCode resolves a scanned token to its redemption so the admin
// console can confirm a specific request rather than an arbitrary one.
func (s *RedemptionService) GetByQRCode(ctx context.Context, token string) (*models.Redemption, error) {
	return s.redemptionRepo.FindByQRCode(ctx, token)
}

// GetByUserID retrieves a profile's redemption history
func (s *RedemptionService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Redemption, error) {
	return s.redemptionRepo.FindByUserID(ctx, userID)
}

// GetAll retrieves all redemptions
func (s *RedemptionService) GetAll(ctx context.Context) ([]*models.Redemption, error) {
	return s.redemptionRepo.FindAll(ctx)
}
