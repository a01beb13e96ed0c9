package client

import (
	"context"
	"net/http"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type ApplicationService struct {
	c *Client
}

func (s *ApplicationService) List(ctx context.Context, p ListParams) ([]models.OrganizerApplication, *dto.Pagination, error) {
	var apps []models.OrganizerApplication
	page, err := s.c.do(ctx, http.MethodGet, "/api/applications", p.values(), nil, &apps)
	if err != nil {
		return nil, nil, err
	}
	return apps, page, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.OrganizerApplication, error) {
	var app models.OrganizerApplication
	if _, err := s.c.do(ctx, http.MethodGet, "/api/applications/"+id, nil, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) FindByEmail(ctx context.Context, email string) (*models.OrganizerApplication, error) {
	var app models.OrganizerApplication
	req := dto.EmailRequest{Email: email}
	if _, err := s.c.do(ctx, http.MethodPost, "/api/applications/find-by-email", nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Submit(ctx context.Context, app map[string]interface{}) (*models.OrganizerApplication, error) {
	var created models.OrganizerApplication
	if _, err := s.c.do(ctx, http.MethodPost, "/api/applications", nil, app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Review accepts or rejects a pending application.
func (s *ApplicationService) Review(ctx context.Context, id, status, feedback string) (*models.OrganizerApplication, error) {
	var app models.OrganizerApplication
	req := dto.ApplicationStatusRequest{Status: status, Feedback: feedback}
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/applications/status/"+id, nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/applications/"+id, nil, nil, nil)
	return err
}

func (s *ApplicationService) Stats(ctx context.Context) (*dto.ApplicationStats, error) {
	var stats dto.ApplicationStats
	if _, err := s.c.do(ctx, http.MethodGet, "/api/applications/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
