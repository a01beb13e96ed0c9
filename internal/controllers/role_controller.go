package controllers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/repository"
	"meetspace-admin/internal/utils"
)

// GetRoles godoc
// @Summary List role entries
// @Description Every admin-tier role assignment, unpaginated
// @Tags roles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles [get]
func GetRoles(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	roles, err := repository.ListRoles(ctx)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch roles"))
	}

	return c.JSON(fiber.Map{"success": true, "data": roles})
}

// CreateRole godoc
// @Summary Create role entry
// @Description Grant an email an admin-tier role; overrides the user document's role at read time
// @Tags roles
// @Accept json
// @Produce json
// @Param role body models.Role true "Role entry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /roles [post]
func CreateRole(c *fiber.Ctx) error {
	var body struct {
		Name                  string `json:"name"`
		Email                 string `json:"email"`
		Password              string `json:"password"`
		Role                  string `json:"role"`
		University            string `json:"university"`
		RequirePasswordChange *bool  `json:"requirePasswordChange"`
	}
	if err := c.BodyParser(&body); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" || body.Role == "" {
		return apperr.Respond(c, apperr.Validation("email and role are required"))
	}
	switch body.Role {
	case models.RoleOrganizer, models.RoleAdmin, models.RoleSuperAdmin:
	default:
		return apperr.Respond(c, apperr.Validation("role must be organizer, admin or super-admin"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.RoleEmailExists(ctx, body.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create role"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("a role entry for this email already exists"))
	}

	now := time.Now().UTC()
	active := true
	role := models.Role{
		Name:                  body.Name,
		Email:                 body.Email,
		Role:                  body.Role,
		University:            body.University,
		IsActive:              &active,
		RequirePasswordChange: body.RequirePasswordChange == nil || *body.RequirePasswordChange,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if body.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Respond(c, apperr.Wrap(err, "failed to create role"))
		}
		role.Password = string(hash)
	}

	if err := repository.InsertRole(ctx, &role); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "a role entry for this email already exists"))
	}

	role.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Role created successfully",
		"data":    role,
	})
}

// GetRole godoc
// @Summary Get a user's role entry
// @Description Resolves the user's email, then looks up the role collection
// @Tags roles
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{userId} [get]
func GetRole(c *fiber.Ctx) error {
	userID, err := utils.Oid(c.Params("userId"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := repository.GetUserByID(ctx, userID)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	role, err := repository.GetRoleByEmail(ctx, user.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "role entry not found"))
	}

	role.Password = ""
	return c.JSON(fiber.Map{"success": true, "data": role})
}

// GetRoleByEmail godoc
// @Summary Get a role entry by email
// @Tags roles
// @Produce json
// @Param email path string true "Email (URL-encoded)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/email/{email} [get]
func GetRoleByEmail(c *fiber.Ctx) error {
	raw := c.Params("email")
	email, err := url.PathUnescape(raw)
	if err != nil {
		email = raw
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return apperr.Respond(c, apperr.Validation("Email is required"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	role, err := repository.GetRoleByEmail(ctx, email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "role entry not found"))
	}

	role.Password = ""
	return c.JSON(fiber.Map{"success": true, "data": role})
}

// defaultRolePassword is the bootstrap credential for accounts promoted
// through the role collection without an existing password hash. The
// requirePasswordChange flag forces a reset on first login.
const defaultRolePassword = "ChangeMe123!"

// UpdateRole godoc
// @Summary Grant or change a user's admin-tier role
// @Description Upserts the role entry keyed by the user's email
// @Tags roles
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{userId} [put]
func UpdateRole(c *fiber.Ctx) error {
	userID, err := utils.Oid(c.Params("userId"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	switch body.Role {
	case models.RoleAdmin, models.RoleSuperAdmin:
	default:
		return apperr.Respond(c, apperr.Validation("Invalid role. Must be 'admin' or 'super-admin'"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := repository.GetUserByID(ctx, userID)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	now := time.Now().UTC()
	existing, err := repository.GetRoleByEmail(ctx, user.Email)
	switch {
	case apperr.IsNotFound(err):
		password := user.Password
		if password == "" {
			hash, herr := bcrypt.GenerateFromPassword([]byte(defaultRolePassword), bcrypt.DefaultCost)
			if herr != nil {
				return apperr.Respond(c, apperr.Wrap(herr, "failed to update role"))
			}
			password = string(hash)
		}
		role := models.Role{
			Name:                  user.Name,
			Email:                 user.Email,
			Password:              password,
			Role:                  body.Role,
			IsActive:              user.IsActive,
			RequirePasswordChange: true,
			LastPasswordChange:    &now,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := repository.InsertRole(ctx, &role); err != nil {
			return apperr.Respond(c, apperr.Wrap(err, "failed to update role"))
		}
	case err != nil:
		return apperr.Respond(c, apperr.Wrap(err, "failed to update role"))
	default:
		updates := bson.M{
			"name":                  user.Name,
			"email":                 user.Email,
			"role":                  body.Role,
			"requirePasswordChange": true,
		}
		if user.IsActive != nil {
			updates["isActive"] = *user.IsActive
		}
		if existing.Password == "" {
			hash, herr := bcrypt.GenerateFromPassword([]byte(defaultRolePassword), bcrypt.DefaultCost)
			if herr != nil {
				return apperr.Respond(c, apperr.Wrap(herr, "failed to update role"))
			}
			updates["password"] = string(hash)
		}
		if _, err := repository.UpdateRole(ctx, existing.ID, updates); err != nil {
			return apperr.Respond(c, apperr.Wrap(err, "failed to update role"))
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role updated successfully",
	})
}

// DeleteRole godoc
// @Summary Revoke a user's admin-tier role
// @Description Removes the role entry and resets the user document's role to "user"
// @Tags roles
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{userId} [delete]
func DeleteRole(c *fiber.Ctx) error {
	userID, err := utils.Oid(c.Params("userId"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := repository.GetUserByID(ctx, userID)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	role, err := repository.GetRoleByEmail(ctx, user.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "role entry not found"))
	}

	if err := repository.DeleteRole(ctx, role.ID); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "role entry not found"))
	}

	if _, err := repository.UpdateUser(ctx, userID, bson.M{"role": models.RoleUser}); err != nil {
		log.Warn().Err(err).Str("userId", userID.Hex()).Msg("role revoked but user role reset failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role deleted successfully",
	})
}
