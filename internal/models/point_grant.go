package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointGrant is the append-only audit record written every time an admin
// issues points to a profile. The ledger never reads these back to compute
// balances; they exist for history views and reconciliation.
type PointGrant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Amount    int                `bson:"amount" json:"amount"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	GrantedBy string             `bson:"grantedBy,omitempty" json:"grantedBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
