package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"meetspace-admin/dto"
	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/repository"
)

// GetPlans godoc
// @Summary List subscription plans
// @Description All plan definitions ordered by displayOrder
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /super/subscription-plans [get]
func GetPlans(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	plans, err := repository.ListPlans(ctx)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch plans"))
	}

	return c.JSON(fiber.Map{"success": true, "data": plans})
}

// GetPlan godoc
// @Summary Get plan by ID or slug
// @Tags plans
// @Produce json
// @Param key path string true "Plan ID or slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscription-plans/{key} [get]
func GetPlan(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	plan, err := repository.GetPlanByKey(ctx, c.Params("key"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "plan not found"))
	}

	return c.JSON(fiber.Map{"success": true, "data": plan})
}

// CreatePlan godoc
// @Summary Create subscription plan
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Plan"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /super/subscription-plans [post]
func CreatePlan(c *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if req.Name == "" || req.Slug == "" {
		return apperr.Respond(c, apperr.Validation("name and slug are required"))
	}
	if req.Price == nil || *req.Price < 0 {
		return apperr.Respond(c, apperr.Validation("price is required and must not be negative"))
	}
	if req.DurationDays == nil || *req.DurationDays <= 0 {
		return apperr.Respond(c, apperr.Validation("durationDays is required and must be positive"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.PlanSlugExists(ctx, req.Slug)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create plan"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("a plan with this slug already exists"))
	}

	now := time.Now().UTC()
	doc := bson.M{
		"name":         req.Name,
		"slug":         req.Slug,
		"description":  req.Description,
		"price":        *req.Price,
		"durationDays": *req.DurationDays,
		"isActive":     req.IsActive == nil || *req.IsActive,
		"createdAt":    now,
		"updatedAt":    now,
	}
	if req.Features != nil {
		doc["features"] = req.Features
	}
	if req.Limits != nil {
		doc["limits"] = req.Limits
	}
	if req.Metadata != nil {
		doc["metadata"] = req.Metadata
	}
	if req.DisplayOrder != nil {
		doc["displayOrder"] = *req.DisplayOrder
	}

	id, err := repository.InsertPlan(ctx, doc)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "a plan with this slug already exists"))
	}

	plan, err := repository.GetPlanByKey(ctx, id.Hex())
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create plan"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Plan created successfully",
		"data":    plan,
	})
}

// UpdatePlan godoc
// @Summary Update subscription plan
// @Tags plans
// @Accept json
// @Produce json
// @Param key path string true "Plan ID or slug"
// @Param plan body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscription-plans/{key} [patch]
func UpdatePlan(c *fiber.Ctx) error {
	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	delete(updates, "_id")
	delete(updates, "slug")
	delete(updates, "createdAt")
	if len(updates) == 0 {
		return apperr.Respond(c, apperr.Validation("no fields to update"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	plan, err := repository.UpdatePlanByKey(ctx, c.Params("key"), updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "plan not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Plan updated successfully",
		"data":    plan,
	})
}

// DeletePlan godoc
// @Summary Delete subscription plan
// @Description Existing subscriptions keep their planId; only the definition is removed
// @Tags plans
// @Produce json
// @Param key path string true "Plan ID or slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscription-plans/{key} [delete]
func DeletePlan(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeletePlanByKey(ctx, c.Params("key")); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "plan not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Plan deleted successfully",
	})
}
