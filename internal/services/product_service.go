package services

import (
	"context"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService handles catalog business logic
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// GetAll retrieves all products
func (s *ProductService) GetAll(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	if product.Price < 0 || product.Stock < 0 {
		return models.ErrInvalidAmount
	}
	return s.productRepo.Create(ctx, product)
}

// Update replaces a catalog product
func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	if product.Price < 0 || product.Stock < 0 {
		return models.ErrInvalidAmount
	}
	return s.productRepo.Update(ctx, product)
}
