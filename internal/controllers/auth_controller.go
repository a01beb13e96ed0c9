package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"meetspace-admin/dto"
	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/services"
)

// Login godoc
// @Summary Log in
// @Description Checks admin-tier role entries before user accounts and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/login [post]
func Login(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Respond(c, apperr.Validation("Invalid request body"))
		}
		if req.Email == "" || req.Password == "" {
			return apperr.Respond(c, apperr.Validation("email and password are required"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		identity, token, err := auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			return apperr.Respond(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": dto.LoginResponse{
				Token: token,
				Role:  identity.Role,
				Email: identity.Email,
				Name:  identity.Name,
			},
			"requirePasswordChange": identity.RequirePasswordChange,
		})
	}
}

// Logout godoc
// @Summary Log out
// @Description Stamps last logout and closes open login history entries
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func Logout(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.EmailRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Respond(c, apperr.Validation("Invalid request body"))
		}
		if req.Email == "" {
			return apperr.Respond(c, apperr.Validation("email is required"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := auth.Logout(ctx, req.Email); err != nil {
			return apperr.Respond(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Logged out successfully",
		})
	}
}

// ChangePassword godoc
// @Summary Change password
// @Description Verifies the current password and stores a new hash on whichever collection holds the account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Password change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/change-password [post]
func ChangePassword(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			dto.ChangePasswordRequest
			Email string `json:"email"`
		}
		if err := c.BodyParser(&req); err != nil {
			return apperr.Respond(c, apperr.Validation("Invalid request body"))
		}

		email := req.Email
		if tokenEmail, ok := c.Locals("user_email").(string); ok && tokenEmail != "" {
			email = tokenEmail
		}
		if email == "" || req.CurrentPassword == "" || req.NewPassword == "" {
			return apperr.Respond(c, apperr.Validation("email, currentPassword and newPassword are required"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := auth.ChangePassword(ctx, email, req.CurrentPassword, req.NewPassword); err != nil {
			return apperr.Respond(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Password changed successfully",
		})
	}
}
