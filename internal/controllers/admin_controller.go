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
	"meetspace-admin/internal/utils"
)

func validAccountStatus(s string) bool {
	switch s {
	case models.AccountActive, models.AccountInactive, models.AccountPending:
		return true
	}
	return false
}

// GetAdmins godoc
// @Summary List admin accounts
// @Tags super
// @Produce json
// @Param university query string false "Restrict to one university"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /super/users [get]
func GetAdmins(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admins, err := repository.ListAdmins(ctx, c.Query("university"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch admin accounts"))
	}

	return c.JSON(fiber.Map{"success": true, "data": admins})
}

// GetAdmin godoc
// @Summary Get admin account by ID
// @Tags super
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/users/{id} [get]
func GetAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid admin id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := repository.GetAdminByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "admin account not found"))
	}

	admin.PasswordHash = ""
	return c.JSON(fiber.Map{"success": true, "data": admin})
}

// CreateAdmin godoc
// @Summary Create admin account
// @Description Email must be unique within the university
// @Tags super
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Admin"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /super/users [post]
func CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" || req.University == "" {
		return apperr.Respond(c, apperr.Validation("name, email, password and university are required"))
	}
	if req.Status == "" {
		req.Status = models.AccountActive
	}
	if !validAccountStatus(req.Status) {
		return apperr.Respond(c, apperr.Validation("status must be Active, Inactive or Pending"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.AdminExists(ctx, req.Email, req.University)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create admin"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("an admin with this email already exists for this university"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create admin"))
	}

	now := time.Now().UTC()
	admin := models.AdminUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		University:   req.University,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repository.InsertAdmin(ctx, &admin); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "an admin with this email already exists for this university"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin created successfully",
		"data":    admin,
	})
}

func adminUpdates(req dto.UpdateAdminRequest) (bson.M, error) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.University != nil {
		updates["university"] = *req.University
	}
	if req.Status != nil {
		if !validAccountStatus(*req.Status) {
			return nil, apperr.Validation("status must be Active, Inactive or Pending")
		}
		updates["status"] = *req.Status
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to hash password")
		}
		updates["passwordHash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}
	return updates, nil
}

// UpdateAdmin godoc
// @Summary Update admin account
// @Tags super
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param admin body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/users/{id} [patch]
func UpdateAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid admin id"))
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	updates, err := adminUpdates(req)
	if err != nil {
		return apperr.Respond(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := repository.UpdateAdmin(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "admin not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin updated successfully",
		"data":    admin,
	})
}

// DeleteAdmin godoc
// @Summary Delete admin account
// @Tags super
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/users/{id} [delete]
func DeleteAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid admin id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteAdmin(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "admin not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin deleted successfully",
	})
}

// GetSuperAdmins godoc
// @Summary List super-admin accounts
// @Tags super
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /super/admins [get]
func GetSuperAdmins(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admins, err := repository.ListSuperAdmins(ctx)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch super-admin accounts"))
	}

	return c.JSON(fiber.Map{"success": true, "data": admins})
}

// GetSuperAdmin godoc
// @Summary Get super-admin account by ID
// @Tags super
// @Produce json
// @Param id path string true "Super admin ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/admins/{id} [get]
func GetSuperAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid super-admin id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := repository.GetSuperAdminByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "super-admin account not found"))
	}

	admin.PasswordHash = ""
	return c.JSON(fiber.Map{"success": true, "data": admin})
}

// CreateSuperAdmin godoc
// @Summary Create super-admin account
// @Tags super
// @Accept json
// @Produce json
// @Param admin body dto.CreateSuperAdminRequest true "Super admin"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /super/admins [post]
func CreateSuperAdmin(c *fiber.Ctx) error {
	var req dto.CreateSuperAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperr.Respond(c, apperr.Validation("name, email and password are required"))
	}
	if req.Status == "" {
		req.Status = models.AccountActive
	}
	if !validAccountStatus(req.Status) {
		return apperr.Respond(c, apperr.Validation("status must be Active, Inactive or Pending"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.SuperAdminEmailExists(ctx, req.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create super admin"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("a super admin with this email already exists"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create super admin"))
	}

	now := time.Now().UTC()
	admin := models.SuperAdminUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repository.InsertSuperAdmin(ctx, &admin); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "a super admin with this email already exists"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Super admin created successfully",
		"data":    admin,
	})
}

// UpdateSuperAdmin godoc
// @Summary Update super-admin account
// @Tags super
// @Accept json
// @Produce json
// @Param id path string true "Super admin ID"
// @Param admin body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/admins/{id} [patch]
func UpdateSuperAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid super admin id"))
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	req.University = nil
	updates, err := adminUpdates(req)
	if err != nil {
		return apperr.Respond(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := repository.UpdateSuperAdmin(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "super admin not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Super admin updated successfully",
		"data":    admin,
	})
}

// DeleteSuperAdmin godoc
// @Summary Delete super-admin account
// @Tags super
// @Produce json
// @Param id path string true "Super admin ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/admins/{id} [delete]
func DeleteSuperAdmin(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid super admin id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteSuperAdmin(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "super admin not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Super admin deleted successfully",
	})
}
