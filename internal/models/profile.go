package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies what a profile is allowed to do
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Profile represents a workshop member tracking a spendable point balance
// and a lifetime earned counter. Points and TotalEarned are only ever
// mutated through the ledger service.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Points      int                `bson:"points" json:"points"`
	TotalEarned int                `bson:"totalEarned" json:"totalEarned"`
	Role        Role               `bson:"role" json:"role"`
	Avatar      string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the stored record against the ledger invariants.
// Stored data is rejected at the store boundary rather than trusted.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrMalformedRecord
	}
	if !p.Role.IsValid() {
		return ErrMalformedRecord
	}
	if p.Points < 0 || p.TotalEarned < 0 {
		return ErrMalformedRecord
	}
	return nil
}
