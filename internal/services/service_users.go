package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/repository"
)

// OverlayRoles replaces each user's role with the matching role-collection
// entry, joined by email string equality. The overlay is unconditional:
// when a role document exists for the email, it wins over user.role.
func OverlayRoles(users []models.User, roles []models.Role) []models.User {
	if len(users) == 0 || len(roles) == 0 {
		return users
	}

	byEmail := make(map[string]string, len(roles))
	for _, r := range roles {
		if r.Email != "" && r.Role != "" {
			byEmail[r.Email] = r.Role
		}
	}

	out := make([]models.User, len(users))
	copy(out, users)
	for i := range out {
		if role, ok := byEmail[out[i].Email]; ok {
			out[i].Role = role
		}
	}
	return out
}

// ListUsersWithRoles fetches a user page and applies the role overlay.
func ListUsersWithRoles(ctx context.Context, q dto.PageQuery) ([]models.User, int64, error) {
	users, total, err := repository.ListUsers(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if len(users) > 0 {
		emails := make([]string, 0, len(users))
		for _, u := range users {
			emails = append(emails, u.Email)
		}
		roles, err := repository.ListRolesByEmails(ctx, emails)
		if err != nil {
			return nil, 0, err
		}
		users = OverlayRoles(users, roles)
	}

	return users, total, nil
}

// ApplyRoleOverlay resolves a single user's effective role. A missing
// role document is the normal case for regular users.
func ApplyRoleOverlay(ctx context.Context, user *models.User) (*models.User, error) {
	role, err := repository.GetRoleByEmail(ctx, user.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, nil
		}
		return nil, err
	}
	if role.Role != "" {
		user.Role = role.Role
	}
	return user, nil
}
