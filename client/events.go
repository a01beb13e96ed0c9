package client

import (
	"context"
	"net/http"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type EventService struct {
	c *Client
}

func (s *EventService) List(ctx context.Context, p ListParams) ([]models.Event, *dto.Pagination, error) {
	var events []models.Event
	page, err := s.c.do(ctx, http.MethodGet, "/api/events", p.values(), nil, &events)
	if err != nil {
		return nil, nil, err
	}
	return events, page, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if _, err := s.c.do(ctx, http.MethodGet, "/api/events/"+id, nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Create(ctx context.Context, event map[string]interface{}) (*models.Event, error) {
	var created models.Event
	if _, err := s.c.do(ctx, http.MethodPost, "/api/events", nil, event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *EventService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Event, error) {
	var event models.Event
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/events/"+id, nil, updates, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil, nil)
	return err
}

func (s *EventService) Stats(ctx context.Context) (*dto.EventStats, error) {
	var stats dto.EventStats
	if _, err := s.c.do(ctx, http.MethodGet, "/api/events/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
