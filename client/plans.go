package client

import (
	"context"
	"net/http"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type PlanService struct {
	c *Client
}

func (s *PlanService) List(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if _, err := s.c.do(ctx, http.MethodGet, "/api/super/subscription-plans", nil, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Get accepts either a document ID or a slug.
func (s *PlanService) Get(ctx context.Context, key string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if _, err := s.c.do(ctx, http.MethodGet, "/api/super/subscription-plans/"+key, nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Create(ctx context.Context, req dto.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if _, err := s.c.do(ctx, http.MethodPost, "/api/super/subscription-plans", nil, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Update(ctx context.Context, key string, updates map[string]interface{}) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/super/subscription-plans/"+key, nil, updates, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Delete(ctx context.Context, key string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/super/subscription-plans/"+key, nil, nil, nil)
	return err
}
