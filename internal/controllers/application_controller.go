package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"meetspace-admin/dto"
	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/repository"
	"meetspace-admin/internal/utils"
)

// GetApplications godoc
// @Summary List organizer applications
// @Tags applications
// @Produce json
// @Param search query string false "Match against name, email, organization and university"
// @Param status query string false "pending, accepted or rejected"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /applications [get]
func GetApplications(c *fiber.Ctx) error {
	q := dto.ParsePageQuery(c.Query("search"), c.Query("page"), c.Query("limit"))

	apps, total, err := repository.ListApplications(c.Context(), q, c.Query("status"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch applications"))
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       apps,
		"pagination": dto.NewPagination(total, q),
	})
}

// GetApplicationStats godoc
// @Summary Application statistics
// @Description Totals per status plus applications submitted since UTC midnight
// @Tags applications
// @Produce json
// @Success 200 {object} dto.ApplicationStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /applications/stats [get]
func GetApplicationStats(c *fiber.Ctx) error {
	stats, err := repository.GetApplicationStats(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to compute application stats"))
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// FindApplicationByEmail godoc
// @Summary Find latest application by email
// @Tags applications
// @Accept json
// @Produce json
// @Param body body dto.EmailRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/find-by-email [post]
func FindApplicationByEmail(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return apperr.Respond(c, apperr.Validation("email is required"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	app, err := repository.FindApplicationByEmail(ctx, req.Email)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "no application found for this email"))
	}

	return c.JSON(fiber.Map{"success": true, "data": app})
}

// GetApplication godoc
// @Summary Get application by ID
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [get]
func GetApplication(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid application id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	app, err := repository.GetApplicationByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "application not found"))
	}

	return c.JSON(fiber.Map{"success": true, "data": app})
}

// CreateApplication godoc
// @Summary Submit organizer application
// @Description New applications always start pending regardless of submitted status
// @Tags applications
// @Accept json
// @Produce json
// @Param application body map[string]interface{} true "Application"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /applications [post]
func CreateApplication(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	fullName, _ := doc["fullName"].(string)
	email, _ := doc["email"].(string)
	organization, _ := doc["organization"].(string)
	experience, _ := doc["experience"].(string)
	reason, _ := doc["reason"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" || organization == "" || experience == "" || reason == "" {
		return apperr.Respond(c, apperr.Validation("fullName, email, organization, experience and reason are required"))
	}
	doc["email"] = email

	utils.NormalizeDates(doc, "dateOfBirth")

	now := time.Now().UTC()
	doc["status"] = models.ApplicationPending
	doc["createdAt"] = now
	doc["updatedAt"] = now
	delete(doc, "_id")
	delete(doc, "feedback")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := repository.InsertApplication(ctx, doc)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to submit application"))
	}

	app, err := repository.GetApplicationByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to submit application"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Application submitted successfully",
		"data":    app,
	})
}

// UpdateApplicationStatus godoc
// @Summary Review application
// @Description Moves a pending application to accepted or rejected; rejection requires feedback
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body dto.ApplicationStatusRequest true "Decision"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/status/{id} [patch]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid application id"))
	}

	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	switch req.Status {
	case models.ApplicationAccepted:
	case models.ApplicationRejected:
		if strings.TrimSpace(req.Feedback) == "" {
			return apperr.Respond(c, apperr.Validation("feedback is required when rejecting an application"))
		}
	default:
		return apperr.Respond(c, apperr.Validation("status must be accepted or rejected"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	current, err := repository.GetApplicationByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "application not found"))
	}
	if current.Status == req.Status {
		// Re-applying the same decision is a no-op.
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Application " + current.Status,
			"data":    current,
		})
	}
	if current.Status != models.ApplicationPending {
		return apperr.Respond(c, apperr.Validation("application has already been reviewed"))
	}

	updates := bson.M{"status": req.Status}
	if req.Feedback != "" {
		updates["feedback"] = req.Feedback
	}

	app, err := repository.UpdateApplication(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "application not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application " + req.Status,
		"data":    app,
	})
}

// DeleteApplication godoc
// @Summary Delete application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [delete]
func DeleteApplication(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid application id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteApplication(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "application not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application deleted successfully",
	})
}
