package dto

// EventListQuery carries the entity-specific list filters for events.
// Empty strings mean the filter is absent.
type EventListQuery struct {
	PageQuery
	Category   string
	Status     string
	Visibility string
	SkillLevel string
	IsVirtual  string
	Featured   string
	StartDate  string
	EndDate    string
	Tags       []string
	SortBy     string
	SortOrder  string
}

type EventStats struct {
	TotalEvents    int64            `json:"totalEvents"`
	UpcomingEvents int64            `json:"upcomingEvents"`
	PastEvents     int64            `json:"pastEvents"`
	FeaturedEvents int64            `json:"featuredEvents"`
	RecentEvents   int64            `json:"recentEvents"`
	TotalAttendees int64            `json:"totalAttendees"`
	ByStatus       map[string]int64 `json:"byStatus"`
	ByCategory     map[string]int64 `json:"byCategory"`
	VirtualSplit   map[string]int64 `json:"virtualSplit"`
	PopularEvents  []PopularEvent   `json:"popularEvents"`
}

type PopularEvent struct {
	Title        string      `json:"title"`
	Attendees    int         `json:"attendees"`
	MaxAttendees int         `json:"maxAttendees,omitempty"`
	Date         interface{} `json:"date,omitempty"`
	Category     string      `json:"category,omitempty"`
}
