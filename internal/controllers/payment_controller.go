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

func validPaymentStatus(s string) bool {
	switch s {
	case models.PaymentPending, models.PaymentSuccess, models.PaymentFailed:
		return true
	}
	return false
}

// GetPayments godoc
// @Summary List payments
// @Description Paginated payments newest first; legacy documents are backfilled in the response
// @Tags payments
// @Produce json
// @Param search query string false "Match against tx_ref, email and names"
// @Param status query string false "pending, success or failed; all disables the filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments [get]
func GetPayments(c *fiber.Ctx) error {
	q := dto.ParsePageQuery(c.Query("search"), c.Query("page"), c.Query("limit"))
	status := c.Query("status")

	payments, total, err := repository.ListPayments(c.Context(), q, status)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch payments"))
	}

	now := time.Now().UTC()
	for i := range payments {
		payments[i].Backfill(now)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       payments,
		"pagination": dto.NewPagination(total, q),
	})
}

// GetPaymentMetrics godoc
// @Summary Payment metrics
// @Description Revenue from successful payments plus per-status counts, scoped to the same filters as the list
// @Tags payments
// @Produce json
// @Param search query string false "Match against tx_ref, email and names"
// @Param status query string false "Status filter"
// @Success 200 {object} dto.PaymentMetrics
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments/metrics [get]
func GetPaymentMetrics(c *fiber.Ctx) error {
	filter := repository.BuildPaymentFilter(c.Query("search"), c.Query("status"))

	metrics, err := repository.GetPaymentMetrics(c.Context(), filter)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to compute payment metrics"))
	}

	return c.JSON(fiber.Map{"success": true, "data": metrics})
}

// GetPayment godoc
// @Summary Get payment by ID or tx_ref
// @Description A 24-hex key is tried as a document ID first, then as a tx_ref
// @Tags payments
// @Produce json
// @Param key path string true "Payment ID or tx_ref"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{key} [get]
func GetPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payment, err := repository.GetPaymentByKey(ctx, c.Params("key"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "payment not found"))
	}

	payment.Backfill(time.Now().UTC())
	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// CreatePayment godoc
// @Summary Create payment
// @Description Records a gateway transaction keyed by tx_ref
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments [post]
func CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.TxRef == "" || req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return apperr.Respond(c, apperr.Validation("tx_ref, amount, email, first_name and last_name are required"))
	}
	if req.Amount <= 0 {
		return apperr.Respond(c, apperr.Validation("amount must be greater than zero"))
	}
	if req.Status != "" && !validPaymentStatus(req.Status) {
		return apperr.Respond(c, apperr.Validation("status must be pending, success or failed"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	exists, err := repository.TxRefExists(ctx, req.TxRef)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create payment"))
	}
	if exists {
		return apperr.Respond(c, apperr.Conflict("a payment with this tx_ref already exists"))
	}

	now := time.Now().UTC()
	payment := models.Payment{
		TxRef:            req.TxRef,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Status:           req.Status,
		CallbackResponse: req.CallbackResponse,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if v := utils.TryNormalizeDate("payment_date", req.PaymentDate); v != nil {
		if t, ok := v.(time.Time); ok {
			payment.PaymentDate = &t
		}
	}
	payment.Backfill(now)

	if err := repository.InsertPayment(ctx, &payment); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "a payment with this tx_ref already exists"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Payment created successfully",
		"data":    payment,
	})
}

// UpdatePayment godoc
// @Summary Update payment
// @Description Only status and the gateway callback payload are mutable
// @Tags payments
// @Accept json
// @Produce json
// @Param key path string true "Payment ID or tx_ref"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{key} [patch]
func UpdatePayment(c *fiber.Ctx) error {
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	updates := bson.M{}
	if req.Status != nil {
		if !validPaymentStatus(*req.Status) {
			return apperr.Respond(c, apperr.Validation("status must be pending, success or failed"))
		}
		updates["status"] = *req.Status
	}
	if req.CallbackResponse != nil {
		updates["callback_response"] = req.CallbackResponse
	}
	if len(updates) == 0 {
		return apperr.Respond(c, apperr.Validation("no fields to update"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	payment, err := repository.UpdatePaymentByKey(ctx, c.Params("key"), updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "payment not found"))
	}

	payment.Backfill(time.Now().UTC())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment updated successfully",
		"data":    payment,
	})
}

// DeletePayment godoc
// @Summary Delete payment
// @Tags payments
// @Produce json
// @Param key path string true "Payment ID or tx_ref"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{key} [delete]
func DeletePayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeletePaymentByKey(ctx, c.Params("key")); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "payment not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment deleted successfully",
	})
}
