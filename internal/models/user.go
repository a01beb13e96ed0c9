package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser       = "user"
	RoleOrganizer  = "organizer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

type LoginEntry struct {
	LoginTime  *time.Time `bson:"loginTime,omitempty" json:"loginTime,omitempty"`
	LogoutTime *time.Time `bson:"logoutTime,omitempty" json:"logoutTime,omitempty"`
	UserAgent  string     `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	IPAddress  string     `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
}

// User lives in the "user" collection. The role field here is only a
// baseline: an admin-tier entry in the role collection overrides it at
// read time (see services.OverlayRoles).
type User struct {
	ID                    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                  string        `bson:"name" json:"name"`
	Email                 string        `bson:"email" json:"email"`
	Password              string        `bson:"password,omitempty" json:"-"`
	Role                  string        `bson:"role,omitempty" json:"role,omitempty"`
	IsActive              *bool         `bson:"isActive,omitempty" json:"isActive,omitempty"`
	RequirePasswordChange bool          `bson:"requirePasswordChange" json:"requirePasswordChange"`
	FailedLoginAttempts   int           `bson:"failedLoginAttempts" json:"failedLoginAttempts"`
	LastPasswordChange    *time.Time    `bson:"lastPasswordChange,omitempty" json:"lastPasswordChange,omitempty"`
	LastLogin             *time.Time    `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	LastLogout            *time.Time    `bson:"lastLogout,omitempty" json:"lastLogout,omitempty"`
	LoginHistory          []LoginEntry  `bson:"loginHistory" json:"loginHistory"`
	CreatedAt             time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt             time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Active treats a missing isActive flag as true.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
