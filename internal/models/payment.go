package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// Payment documents can be looked up by either _id or tx_ref; tx_ref is
// the reference issued by the external payment gateway.
type Payment struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TxRef            string        `bson:"tx_ref" json:"tx_ref"`
	Amount           float64       `bson:"amount" json:"amount"`
	Currency         string        `bson:"currency" json:"currency"`
	Email            string        `bson:"email" json:"email"`
	FirstName        string        `bson:"first_name" json:"first_name"`
	LastName         string        `bson:"last_name" json:"last_name"`
	Status           string        `bson:"status" json:"status"`
	PaymentDate      *time.Time    `bson:"payment_date,omitempty" json:"payment_date,omitempty"`
	CallbackResponse interface{}   `bson:"callback_response,omitempty" json:"callback_response,omitempty"`
	CreatedAt        time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Backfill fills gaps in legacy documents with safe defaults so read
// paths never surface a half-formed payment.
func (p *Payment) Backfill(now time.Time) {
	if p.TxRef == "" {
		p.TxRef = "unknown-" + p.ID.Hex()
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Email == "" {
		p.Email = "unknown@example.com"
	}
	if p.FirstName == "" {
		p.FirstName = "Unknown"
	}
	if p.LastName == "" {
		p.LastName = "User"
	}
	if p.Status == "" {
		p.Status = PaymentPending
	}
	if p.PaymentDate == nil {
		p.PaymentDate = &now
	}
}
