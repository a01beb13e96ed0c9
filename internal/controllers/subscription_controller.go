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

// subscriptionView attaches the owning user when the weak userId
// reference still resolves; orphaned subscriptions ship without one.
type subscriptionView struct {
	models.Subscription
	User *models.User `json:"user,omitempty"`
}

func attachOwners(ctx context.Context, subs []models.Subscription) ([]subscriptionView, error) {
	ids := make([]bson.ObjectID, 0, len(subs))
	for _, sub := range subs {
		if !sub.UserID.IsZero() {
			ids = append(ids, sub.UserID)
		}
	}

	owners := map[string]models.User{}
	if len(ids) > 0 {
		var err error
		owners, err = repository.LookupUsersByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]subscriptionView, len(subs))
	for i, sub := range subs {
		views[i].Subscription = sub
		if owner, ok := owners[sub.UserID.Hex()]; ok {
			owner.Password = ""
			views[i].User = &owner
		}
	}
	return views, nil
}

// GetSubscriptions godoc
// @Summary List subscriptions
// @Description Paginated subscriptions with each owning user attached when it still exists
// @Tags subscriptions
// @Produce json
// @Param search query string false "Match against planId and transactionRef"
// @Param status query string false "Subscription status filter"
// @Param paymentStatus query string false "Payment status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /super/subscriptions [get]
func GetSubscriptions(c *fiber.Ctx) error {
	q := dto.ParsePageQuery(c.Query("search"), c.Query("page"), c.Query("limit"))

	subs, total, err := repository.ListSubscriptions(c.Context(), q, c.Query("status"), c.Query("paymentStatus"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch subscriptions"))
	}

	views, err := attachOwners(c.Context(), subs)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch subscriptions"))
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       views,
		"pagination": dto.NewPagination(total, q),
	})
}

// GetSubscription godoc
// @Summary Get subscription by ID
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscriptions/{id} [get]
func GetSubscription(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid subscription id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	sub, err := repository.GetSubscriptionByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "subscription not found"))
	}

	views, err := attachOwners(ctx, []models.Subscription{*sub})
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch subscription"))
	}

	return c.JSON(fiber.Map{"success": true, "data": views[0]})
}

// CreateSubscription godoc
// @Summary Create subscription
// @Description Date fields are normalized when parseable and stored as submitted otherwise
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body map[string]interface{} true "Subscription"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /super/subscriptions [post]
func CreateSubscription(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	planID, _ := doc["planId"].(string)
	userHex, _ := doc["userId"].(string)
	status, _ := doc["status"].(string)
	paymentStatus, _ := doc["paymentStatus"].(string)
	currency, _ := doc["currency"].(string)
	switch {
	case planID == "" || userHex == "":
		return apperr.Respond(c, apperr.Validation("userId and planId are required"))
	case status == "" || paymentStatus == "":
		return apperr.Respond(c, apperr.Validation("status and paymentStatus are required"))
	case doc["startDate"] == nil || doc["endDate"] == nil:
		return apperr.Respond(c, apperr.Validation("startDate and endDate are required"))
	case doc["amount"] == nil || currency == "":
		return apperr.Respond(c, apperr.Validation("amount and currency are required"))
	}
	userID, err := utils.Oid(userHex)
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid userId"))
	}
	doc["userId"] = userID

	utils.NormalizeDates(doc, "startDate", "endDate", "expiryDate")

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	delete(doc, "_id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := repository.InsertSubscription(ctx, doc)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create subscription"))
	}

	sub, err := repository.GetSubscriptionByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create subscription"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subscription created successfully",
		"data":    sub,
	})
}

// UpdateSubscription godoc
// @Summary Update subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param subscription body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscriptions/{id} [patch]
func UpdateSubscription(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid subscription id"))
	}

	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	delete(updates, "_id")
	delete(updates, "userId")
	delete(updates, "createdAt")
	if len(updates) == 0 {
		return apperr.Respond(c, apperr.Validation("no fields to update"))
	}

	utils.NormalizeDates(updates, "startDate", "endDate", "expiryDate")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	sub, err := repository.UpdateSubscription(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "subscription not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription updated successfully",
		"data":    sub,
	})
}

// UpdateSubscriptionStatus godoc
// @Summary Update subscription status
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param body body map[string]string true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscriptions/{id}/status [patch]
func UpdateSubscriptionStatus(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid subscription id"))
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	if strings.TrimSpace(body.Status) == "" {
		return apperr.Respond(c, apperr.Validation("Status cannot be empty"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	sub, err := repository.UpdateSubscription(ctx, id, bson.M{"status": body.Status})
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "subscription not found"))
	}

	views, err := attachOwners(ctx, []models.Subscription{*sub})
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch subscription"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription status updated to " + body.Status,
		"data":    views[0],
	})
}

// DeleteSubscription godoc
// @Summary Delete subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /super/subscriptions/{id} [delete]
func DeleteSubscription(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid subscription id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteSubscription(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "subscription not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription deleted successfully",
	})
}
