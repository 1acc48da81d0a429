package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCategory groups catalog items for the storefront
type ProductCategory string

const (
	CategoryFood       ProductCategory = "food"
	CategoryElectronic ProductCategory = "electronic"
	CategoryTicket     ProductCategory = "ticket"
	CategoryOther      ProductCategory = "other"
)

// Product represents a redeemable item in the workshop catalog
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    ProductCategory    `bson:"category" json:"category"`
	Price       int                `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
