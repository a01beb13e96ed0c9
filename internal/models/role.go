package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the authoritative record for admin and super-admin identities,
// keyed by email in its own "role" collection. It is deliberately not a
// foreign key onto user: the two collections are joined by email string
// equality in the service layer.
type Role struct {
	ID                    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                  string        `bson:"name" json:"name"`
	Email                 string        `bson:"email" json:"email"`
	Password              string        `bson:"password,omitempty" json:"-"`
	Role                  string        `bson:"role" json:"role"`
	IsActive              *bool         `bson:"isActive,omitempty" json:"isActive,omitempty"`
	RequirePasswordChange bool          `bson:"requirePasswordChange" json:"requirePasswordChange"`
	FailedLoginAttempts   int           `bson:"failedLoginAttempts" json:"failedLoginAttempts"`
	LastPasswordChange    *time.Time    `bson:"lastPasswordChange,omitempty" json:"lastPasswordChange,omitempty"`
	University            string        `bson:"university,omitempty" json:"university,omitempty"`
	CreatedAt             time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt             time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
