package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	AccountActive   = "Active"
	AccountInactive = "Inactive"
	AccountPending  = "Pending"
)

// AdminUser accounts are partitioned by university; (email, university)
// is the unique key.
type AdminUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash,omitempty" json:"-"`
	Role         string        `bson:"role" json:"role"`
	University   string        `bson:"university" json:"university"`
	Status       string        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type SuperAdminUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash,omitempty" json:"-"`
	Role         string        `bson:"role" json:"role"`
	Status       string        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
