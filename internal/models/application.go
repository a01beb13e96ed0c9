package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// OrganizerApplication is submitted by the public application form and
// reviewed by admins. Status moves pending -> accepted|rejected; the
// review endpoint never moves it back to pending.
type OrganizerApplication struct {
	ID                     bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName               string        `bson:"fullName" json:"fullName"`
	Email                  string        `bson:"email" json:"email"`
	Phone                  string        `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth            interface{}   `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	University             string        `bson:"university,omitempty" json:"university,omitempty"`
	Department             string        `bson:"department,omitempty" json:"department,omitempty"`
	Role                   string        `bson:"role,omitempty" json:"role,omitempty"`
	YearOfStudy            string        `bson:"yearOfStudy,omitempty" json:"yearOfStudy,omitempty"`
	StudentID              string        `bson:"studentId,omitempty" json:"studentId,omitempty"`
	Organization           string        `bson:"organization,omitempty" json:"organization,omitempty"`
	Experience             string        `bson:"experience" json:"experience"`
	Reason                 string        `bson:"reason" json:"reason"`
	Skills                 []string      `bson:"skills,omitempty" json:"skills,omitempty"`
	Availability           string        `bson:"availability,omitempty" json:"availability,omitempty"`
	IDDocumentURL          string        `bson:"idDocumentUrl,omitempty" json:"idDocumentUrl,omitempty"`
	ProfilePhotoURL        string        `bson:"profilePhotoUrl,omitempty" json:"profilePhotoUrl,omitempty"`
	TermsAccepted          bool          `bson:"termsAccepted,omitempty" json:"termsAccepted,omitempty"`
	NewsletterSubscription bool          `bson:"newsletterSubscription,omitempty" json:"newsletterSubscription,omitempty"`
	Status                 string        `bson:"status" json:"status"`
	Feedback               string        `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt              time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt              time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
