package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"meetspace-admin/dto"
	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/repository"
	"meetspace-admin/internal/services"
	"meetspace-admin/internal/utils"
)

// GetUsers godoc
// @Summary List users
// @Description Paginated user list with free-text search; admin-tier roles are overlaid by email
// @Tags users
// @Produce json
// @Param search query string false "Match against name, email or role"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func GetUsers(c *fiber.Ctx) error {
	q := dto.ParsePageQuery(c.Query("search"), c.Query("page"), c.Query("limit"))

	users, total, err := services.ListUsersWithRoles(c.Context(), q)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch users"))
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       users,
		"pagination": dto.NewPagination(total, q),
	})
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func GetUser(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := repository.GetUserByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	user, err = services.ApplyRoleOverlay(ctx, user)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch user"))
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperr.Respond(c, apperr.Validation("name, email and password are required"))
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.UserEmailExists(ctx, req.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create user"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("a user with this email already exists"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create user"))
	}

	now := time.Now().UTC()
	active := true
	user := models.User{
		Name:                  req.Name,
		Email:                 req.Email,
		Password:              string(hash),
		Role:                  req.Role,
		IsActive:              &active,
		RequirePasswordChange: req.RequirePasswordChange,
		LoginHistory:          []models.LoginEntry{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	// Regular users set their own password at signup; the forced-change
	// flag only applies to admin-tier accounts.
	if user.Role == models.RoleUser {
		user.RequirePasswordChange = false
	}

	if err := repository.InsertUser(ctx, &user); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "a user with this email already exists"))
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

// userUpdates builds the $set document for a user update. Regular
// "user" accounts never carry a forced password change, so the flag is
// demoted whenever the payload makes the role "user".
func userUpdates(req dto.UpdateUserRequest) (bson.M, error) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["isActive"] = *req.IsActive
	}
	if req.RequirePasswordChange != nil {
		updates["requirePasswordChange"] = *req.RequirePasswordChange
	}
	if req.Role != nil && *req.Role == models.RoleUser {
		updates["requirePasswordChange"] = false
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to update user")
		}
		updates["password"] = string(hash)
		updates["lastPasswordChange"] = time.Now().UTC()
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}
	return updates, nil
}

// UpdateUser godoc
// @Summary Update user
// @Description Merge the supplied fields into the user document
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [patch]
func UpdateUser(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	updates, uerr := userUpdates(req)
	if uerr != nil {
		return apperr.Respond(c, uerr)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	// When the payload sets the flag without touching the role, the
	// stored role decides whether it sticks.
	if want, ok := updates["requirePasswordChange"].(bool); ok && want && req.Role == nil {
		current, err := repository.GetUserByID(ctx, id)
		if err != nil {
			return apperr.Respond(c, apperr.Wrap(err, "user not found"))
		}
		if current.Role == models.RoleUser {
			updates["requirePasswordChange"] = false
		}
	}

	user, err := repository.UpdateUser(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser godoc
// @Summary Delete user
// @Description Remove the user document; related payments and subscriptions are left untouched
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func DeleteUser(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid user id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteUser(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "user not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

// CheckUserEmail godoc
// @Summary Look up a user by email
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/check-email [post]
func CheckUserEmail(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return apperr.Respond(c, apperr.Validation("Email is required"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := repository.GetUserByEmail(ctx, email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "User not found"))
	}

	user.Password = ""
	return c.JSON(fiber.Map{"success": true, "data": user})
}

// UserStatus godoc
// @Summary Check whether an account is active
// @Description Fail-open: an unknown email reports active so a transient lookup problem never locks anyone out
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/status [post]
func UserStatus(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return apperr.Respond(c, apperr.Validation("Email is required"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	active := true
	user, err := repository.GetUserByEmail(ctx, email)
	switch {
	case apperr.IsNotFound(err):
		// keep the default
	case err != nil:
		return apperr.Respond(c, apperr.Wrap(err, "Failed to check user status"))
	default:
		active = user.Active()
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	return c.JSON(fiber.Map{"success": true, "isActive": active})
}
