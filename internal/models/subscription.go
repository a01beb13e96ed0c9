package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription references a user by id only. Deleting the user does not
// cascade here; the collections are independently managed.
type Subscription struct {
	ID                   bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID               bson.ObjectID `bson:"userId" json:"userId"`
	PlanID               string        `bson:"planId" json:"planId"`
	Status               string        `bson:"status" json:"status"`
	PaymentStatus        string        `bson:"paymentStatus" json:"paymentStatus"`
	StartDate            interface{}   `bson:"startDate" json:"startDate"`
	EndDate              interface{}   `bson:"endDate" json:"endDate"`
	ExpiryDate           interface{}   `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	Amount               float64       `bson:"amount" json:"amount"`
	Currency             string        `bson:"currency" json:"currency"`
	TransactionRef       string        `bson:"transactionRef,omitempty" json:"transactionRef,omitempty"`
	Metadata             interface{}   `bson:"metadata,omitempty" json:"metadata,omitempty"`
	VerificationResponse interface{}   `bson:"verificationResponse,omitempty" json:"verificationResponse,omitempty"`
	CreatedAt            time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt            time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
