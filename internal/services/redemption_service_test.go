package services

import (
	"context"
	"testing"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type redemptionFixture struct {
	svc         *RedemptionService
	profileRepo *memory.ProfileRepository
	productRepo *memory.ProductRepository
}

func newRedemptionFixture(t *testing.T) *redemptionFixture {
	t.Helper()
	profileRepo := memory.NewProfileRepository()
	redemptionRepo := memory.NewRedemptionRepository()
	productRepo := memory.NewProductRepository()
	grantRepo := memory.NewPointGrantRepository()
	ledger := NewLedgerService(profileRepo, redemptionRepo, grantRepo)
	return &redemptionFixture{
		svc:         NewRedemptionService(ledger, redemptionRepo, productRepo),
		profileRepo: profileRepo,
		productRepo: productRepo,
	}
}

func (f *redemptionFixture) seed(t *testing.T, points, price, stock int) (*models.Profile, *models.Product) {
	t.Helper()
	ctx := context.Background()
	p := &models.Profile{Name: "Alex Chen", Points: points, TotalEarned: points, Role: models.RoleStudent}
	require.NoError(t, f.profileRepo.Create(ctx, p))
	prod := &models.Product{Name: "Movie Ticket", Category: models.CategoryTicket, Price: price, Stock: stock}
	require.NoError(t, f.productRepo.Create(ctx, prod))
	return p, prod
}

func TestRedemptionRequestDecrementsStock(t *testing.T) {
	f := newRedemptionFixture(t)
	ctx := context.Background()
	p, prod := f.seed(t, 1200, 800, 10)

	redemption, err := f.svc.Request(ctx, p.ID, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movie Ticket", redemption.ProductName)
	assert.Equal(t, 800, redemption.PointsSpent)

	stored, err := f.productRepo.FindByID(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.Stock)
}

func TestRedemptionRequestOutOfStock(t *testing.T) {
	f := newRedemptionFixture(t)
	ctx := context.Background()
	p, prod := f.seed(t, 1200, 800, 0)

	_, err := f.svc.Request(ctx, p.ID, prod.ID)
	assert.ErrorIs(t, err, models.ErrOutOfStock)

	// No points move when the item is out of stock
	stored, err := f.profileRepo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200, stored.Points)
}

func TestRedemptionRequestUnknownProduct(t *testing.T) {
	f := newRedemptionFixture(t)
	ctx := context.Background()
	p, _ := f.seed(t, 1200, 800, 1)

	_, err := f.svc.Request(ctx, p.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestRedemptionCancelRestoresStock(t *testing.T) {
	f := newRedemptionFixture(t)
	ctx := context.Background()
	p, prod := f.seed(t, 1200, 800, 5)

	redemption, err := f.svc.Request(ctx, p.ID, prod.ID)
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, redemption.ID)
	require.NoError(t, err)

	storedProduct, err := f.productRepo.FindByID(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, storedProduct.Stock)

	storedProfile, err := f.profileRepo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200, storedProfile.Points)
}

func TestRedemptionLookupByQRCode(t *testing.T) {
	f := newRedemptionFixture(t)
	ctx := context.Background()
	p, prod := f.seed(t, 1200, 800, 5)

	redemption, err := f.svc.Request(ctx, p.ID, prod.ID)
	require.NoError(t, err)

	found, err := f.svc.GetByQRCode(ctx, redemption.QRCodeData)
	require.NoError(t, err)
	assert.Equal(t, redemption.ID, found.ID)

	_, err = f.svc.GetByQRCode(ctx, "no-such-token")
	assert.ErrorIs(t, err, models.ErrRedemptionNotFound)
}
