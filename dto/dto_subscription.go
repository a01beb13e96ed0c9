package dto

type SubscriptionStatusRequest struct {
	Status string `json:"status"`
}

type CreatePlanRequest struct {
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description"`
	Price        *float64    `json:"price"`
	DurationDays *int        `json:"durationDays"`
	Features     interface{} `json:"features"`
	Limits       interface{} `json:"limits"`
	IsActive     *bool       `json:"isActive"`
	DisplayOrder *int        `json:"displayOrder"`
	Metadata     interface{} `json:"metadata"`
}
