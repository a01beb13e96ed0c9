package client

import (
	"context"
	"encoding/json"
	"net/http"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type SubscriptionService struct {
	c *Client
}

// SubscriptionRecord is a subscription plus its owning user when the
// reference still resolves.
type SubscriptionRecord struct {
	models.Subscription
	User *models.User `json:"user,omitempty"`
}

func (s *SubscriptionService) List(ctx context.Context, p ListParams) ([]SubscriptionRecord, *dto.Pagination, error) {
	var subs []SubscriptionRecord
	page, err := s.c.do(ctx, http.MethodGet, "/api/super/subscriptions", p.values(), nil, &subs)
	if err != nil {
		return nil, nil, err
	}
	for i := range subs {
		if subs[i].User != nil {
			normalizeUser(subs[i].User)
		}
	}
	return subs, page, nil
}

func (s *SubscriptionService) Get(ctx context.Context, id string) (*SubscriptionRecord, error) {
	var sub SubscriptionRecord
	if _, err := s.c.do(ctx, http.MethodGet, "/api/super/subscriptions/"+id, nil, nil, &sub); err != nil {
		return nil, err
	}
	if sub.User != nil {
		normalizeUser(sub.User)
	}
	return &sub, nil
}

func (s *SubscriptionService) Create(ctx context.Context, sub map[string]interface{}) (*models.Subscription, error) {
	var created models.Subscription
	if _, err := s.c.do(ctx, http.MethodPost, "/api/super/subscriptions", nil, sub, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SubscriptionService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Subscription, error) {
	var sub models.Subscription
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/super/subscriptions/"+id, nil, updates, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/super/subscriptions/"+id, nil, nil, nil)
	return err
}

// UnmarshalJSON flattens the embedded subscription alongside the user.
func (r *SubscriptionRecord) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Subscription); err != nil {
		return err
	}
	var userOnly struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &userOnly); err != nil {
		return err
	}
	r.User = userOnly.User
	return nil
}
