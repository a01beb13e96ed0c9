package client

import (
	"context"
	"net/http"
	"net/url"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type AdminService struct {
	c *Client
}

func (s *AdminService) List(ctx context.Context, university string) ([]models.AdminUser, error) {
	q := url.Values{}
	if university != "" {
		q.Set("university", university)
	}
	var admins []models.AdminUser
	if _, err := s.c.do(ctx, http.MethodGet, "/api/super/users", q, nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *AdminService) Create(ctx context.Context, req dto.CreateAdminRequest) (*models.AdminUser, error) {
	var admin models.AdminUser
	if _, err := s.c.do(ctx, http.MethodPost, "/api/super/users", nil, req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) Update(ctx context.Context, id string, req dto.UpdateAdminRequest) (*models.AdminUser, error) {
	var admin models.AdminUser
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/super/users/"+id, nil, req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/super/users/"+id, nil, nil, nil)
	return err
}

func (s *AdminService) ListSuper(ctx context.Context) ([]models.SuperAdminUser, error) {
	var admins []models.SuperAdminUser
	if _, err := s.c.do(ctx, http.MethodGet, "/api/super/admins", nil, nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *AdminService) CreateSuper(ctx context.Context, req dto.CreateSuperAdminRequest) (*models.SuperAdminUser, error) {
	var admin models.SuperAdminUser
	if _, err := s.c.do(ctx, http.MethodPost, "/api/super/admins", nil, req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) UpdateSuper(ctx context.Context, id string, req dto.UpdateAdminRequest) (*models.SuperAdminUser, error) {
	var admin models.SuperAdminUser
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/super/admins/"+id, nil, req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) DeleteSuper(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/super/admins/"+id, nil, nil, nil)
	return err
}
