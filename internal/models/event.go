package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var EventCategories = []string{
	"Conference", "Workshop", "Seminar", "Meetup", "Webinar",
	"Training", "Networking", "Social", "Other",
}

var EventStatuses = []string{
	"Draft", "Published", "Cancelled", "Postponed", "Sold Out", "Completed",
}

type ImageObject struct {
	URL         string `bson:"url" json:"url"`
	Alt         string `bson:"alt,omitempty" json:"alt,omitempty"`
	Attribution string `bson:"attribution,omitempty" json:"attribution,omitempty"`
	Height      int    `bson:"height,omitempty" json:"height,omitempty"`
	Width       int    `bson:"width,omitempty" json:"width,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type Location struct {
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	City         string       `bson:"city,omitempty" json:"city,omitempty"`
	State        string       `bson:"state,omitempty" json:"state,omitempty"`
	Country      string       `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode   string       `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	VenueDetails string       `bson:"venueDetails,omitempty" json:"venueDetails,omitempty"`
	Coordinates  *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Organizer struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	ContactEmail string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty"`
}

// Ticket sub-documents carry their own sales windows, normalized
// independently of the event's date fields.
type Ticket struct {
	Type        string      `bson:"type,omitempty" json:"type,omitempty"`
	Name        string      `bson:"name,omitempty" json:"name,omitempty"`
	Price       float64     `bson:"price" json:"price"`
	Currency    string      `bson:"currency,omitempty" json:"currency,omitempty"`
	Quantity    int         `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Available   int         `bson:"available,omitempty" json:"available,omitempty"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	SalesStart  interface{} `bson:"salesStart,omitempty" json:"salesStart,omitempty"`
	SalesEnd    interface{} `bson:"salesEnd,omitempty" json:"salesEnd,omitempty"`
	IsEarlyBird bool        `bson:"isEarlyBird,omitempty" json:"isEarlyBird,omitempty"`
}

type AgendaItem struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Speaker     string `bson:"speaker,omitempty" json:"speaker,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
}

type EventMetadata struct {
	CreatedBy bson.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy bson.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	Featured  bool          `bson:"featured,omitempty" json:"featured,omitempty"`
	Promoted  bool          `bson:"promoted,omitempty" json:"promoted,omitempty"`
	Views     int           `bson:"views,omitempty" json:"views,omitempty"`
	Shares    int           `bson:"shares,omitempty" json:"shares,omitempty"`
	Likes     int           `bson:"likes,omitempty" json:"likes,omitempty"`
}

// Event keeps its date-typed fields as interface{} because the API
// intentionally stores unparseable date input as submitted instead of
// rejecting it (see utils.TryNormalizeDate).
type Event struct {
	ID                   bson.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title                string         `bson:"title" json:"title"`
	ShortDescription     string         `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Description          string         `bson:"description" json:"description"`
	Category             string         `bson:"category" json:"category"`
	Date                 interface{}    `bson:"date" json:"date"`
	EndDate              interface{}    `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Duration             int            `bson:"duration,omitempty" json:"duration,omitempty"`
	Time                 string         `bson:"time,omitempty" json:"time,omitempty"`
	Location             *Location      `bson:"location,omitempty" json:"location,omitempty"`
	IsVirtual            bool           `bson:"isVirtual" json:"isVirtual"`
	MeetingLink          string         `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	StreamingPlatform    string         `bson:"streamingPlatform,omitempty" json:"streamingPlatform,omitempty"`
	OrganizerID          bson.ObjectID  `bson:"organizerId,omitempty" json:"organizerId,omitempty"`
	Organizer            *Organizer     `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Price                float64        `bson:"price" json:"price"`
	Currency             string         `bson:"currency,omitempty" json:"currency,omitempty"`
	Tickets              []Ticket       `bson:"tickets,omitempty" json:"tickets,omitempty"`
	Attendees            int            `bson:"attendees" json:"attendees"`
	MaxAttendees         int            `bson:"maxAttendees,omitempty" json:"maxAttendees,omitempty"`
	MinimumAttendees     int            `bson:"minimumAttendees,omitempty" json:"minimumAttendees,omitempty"`
	Status               string         `bson:"status" json:"status"`
	Visibility           string         `bson:"visibility,omitempty" json:"visibility,omitempty"`
	SkillLevel           string         `bson:"skillLevel,omitempty" json:"skillLevel,omitempty"`
	Requirements         []string       `bson:"requirements,omitempty" json:"requirements,omitempty"`
	TargetAudience       []string       `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	Agenda               []AgendaItem   `bson:"agenda,omitempty" json:"agenda,omitempty"`
	Tags                 []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	Image                string         `bson:"image,omitempty" json:"image,omitempty"`
	ImageURL             string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CoverImage           *ImageObject   `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Logo                 *ImageObject   `bson:"logo,omitempty" json:"logo,omitempty"`
	RegistrationDeadline interface{}    `bson:"registrationDeadline,omitempty" json:"registrationDeadline,omitempty"`
	EarlyBirdDeadline    interface{}    `bson:"earlyBirdDeadline,omitempty" json:"earlyBirdDeadline,omitempty"`
	RefundPolicy         string         `bson:"refundPolicy,omitempty" json:"refundPolicy,omitempty"`
	Metadata             *EventMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
	IsActive             *bool          `bson:"isActive,omitempty" json:"isActive,omitempty"`
	IsFeatured           bool           `bson:"isFeatured" json:"isFeatured"`
	CreatedAt            time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt            time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
