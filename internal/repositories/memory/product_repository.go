package memory

import (
	"context"
	"sync"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// ProductRepository holds catalog products in memory
type ProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]*models.Product
}

// NewProductRepository creates an empty in-memory product store
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[primitive.ObjectID]*models.Product),
	}
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

// FindByID finds a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

// FindAll retrieves all products
func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		products = append(products, &clone)
	}
	return products, nil
}

// Update replaces an existing product
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return models.ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}
