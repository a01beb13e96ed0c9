package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PlanFeature struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Included    bool   `bson:"included" json:"included"`
}

// -1 means unlimited for the numeric limits.
type PlanLimits struct {
	MaxEvents            int      `bson:"maxEvents,omitempty" json:"maxEvents,omitempty"`
	MaxAttendeesPerEvent int      `bson:"maxAttendeesPerEvent,omitempty" json:"maxAttendeesPerEvent,omitempty"`
	MaxFileUploads       int      `bson:"maxFileUploads,omitempty" json:"maxFileUploads,omitempty"`
	MaxImageSize         int      `bson:"maxImageSize,omitempty" json:"maxImageSize,omitempty"`
	MaxVideoLength       int      `bson:"maxVideoLength,omitempty" json:"maxVideoLength,omitempty"`
	CustomDomain         bool     `bson:"customDomain,omitempty" json:"customDomain,omitempty"`
	Analytics            string   `bson:"analytics,omitempty" json:"analytics,omitempty"`
	Support              string   `bson:"support,omitempty" json:"support,omitempty"`
	EventTypes           []string `bson:"eventTypes,omitempty" json:"eventTypes,omitempty"`
}

type PlanMetadata struct {
	IsPopular        bool `bson:"isPopular,omitempty" json:"isPopular,omitempty"`
	IsTrial          bool `bson:"isTrial,omitempty" json:"isTrial,omitempty"`
	IsEnterpriseFlag bool `bson:"isEnterpriseFlag,omitempty" json:"isEnterpriseFlag,omitempty"`
}

// SubscriptionPlan is stored in the "planDefinitions" collection and
// addressed by its lowercase slug, which is unique.
type SubscriptionPlan struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Slug         string        `bson:"slug" json:"slug"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64       `bson:"price" json:"price"`
	DurationDays int           `bson:"durationDays" json:"durationDays"`
	Features     []PlanFeature `bson:"features" json:"features"`
	Limits       *PlanLimits   `bson:"limits,omitempty" json:"limits,omitempty"`
	IsActive     *bool         `bson:"isActive,omitempty" json:"isActive,omitempty"`
	DisplayOrder int           `bson:"displayOrder" json:"displayOrder"`
	Metadata     *PlanMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
