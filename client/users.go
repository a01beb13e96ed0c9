package client

import (
	"context"
	"net/http"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/services"
)

type UserService struct {
	c *Client
}

// normalizeUser fills defaults the dashboard relies on: documents
// predating the role and isActive fields read as active regular users.
func normalizeUser(u *models.User) {
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

// List fetches a user page along with every role entry and applies the
// role overlay locally, mirroring the server's read path.
func (s *UserService) List(ctx context.Context, p ListParams) ([]models.User, *dto.Pagination, error) {
	var users []models.User
	page, err := s.c.do(ctx, http.MethodGet, "/api/users", p.values(), nil, &users)
	if err != nil {
		return nil, nil, err
	}

	var roles []models.Role
	if _, err := s.c.do(ctx, http.MethodGet, "/api/roles", nil, nil, &roles); err != nil {
		return nil, nil, err
	}

	users = services.OverlayRoles(users, roles)
	for i := range users {
		normalizeUser(&users[i])
	}
	return users, page, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if _, err := s.c.do(ctx, http.MethodGet, "/api/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	normalizeUser(&user)
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	var user models.User
	if _, err := s.c.do(ctx, http.MethodPost, "/api/users", nil, req, &user); err != nil {
		return nil, err
	}
	normalizeUser(&user)
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/users/"+id, nil, req, &user); err != nil {
		return nil, err
	}
	normalizeUser(&user)
	return &user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil, nil)
	return err
}

// Roles lists the raw role entries.
func (s *UserService) Roles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if _, err := s.c.do(ctx, http.MethodGet, "/api/roles", nil, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
