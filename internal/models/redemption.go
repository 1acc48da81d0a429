package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedemptionStatus is the lifecycle state of a redemption request.
// Pending is the initial state; completed and cancelled are terminal.
type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionCompleted RedemptionStatus = "completed"
	RedemptionCancelled RedemptionStatus = "cancelled"
)

// IsValid reports whether the status is one of the known states
func (s RedemptionStatus) IsValid() bool {
	switch s {
	case RedemptionPending, RedemptionCompleted, RedemptionCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed
func (s RedemptionStatus) IsTerminal() bool {
	return s == RedemptionCompleted || s == RedemptionCancelled
}

// Redemption records a point-for-product exchange request. Points are
// debited when the request is created, not when it is fulfilled, so
// PointsSpent is fixed at request time. ProductName is a snapshot of the
// catalog name so history survives catalog edits.
type Redemption struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	PointsSpent int                `bson:"pointsSpent" json:"pointsSpent"`
	Status      RedemptionStatus   `bson:"status" json:"status"`
	QRCodeData  string             `bson:"qrCodeData" json:"qrCodeData"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the stored record before it is handed to callers
func (r *Redemption) Validate() error {
	if r.UserID.IsZero() || r.ProductID.IsZero() {
		return ErrMalformedRecord
	}
	if r.PointsSpent < 0 {
		return ErrMalformedRecord
	}
	if !r.Status.IsValid() {
		return ErrMalformedRecord
	}
	return nil
}
