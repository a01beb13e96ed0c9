package controllers

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/repository"
)

// GetUserReport godoc
// @Summary User activity report
// @Description Totals plus a daily registration trend for the requested period
// @Tags reports
// @Produce json
// @Param period query string false "7days, 30days, 90days, thisMonth, lastMonth or thisYear"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/users [get]
func GetUserReport(c *fiber.Ctx) error {
	report, err := repository.GetUserReport(c.Context(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to build user report"))
	}
	return c.JSON(fiber.Map{"success": true, "data": report})
}

// GetEventReport godoc
// @Summary Event report
// @Tags reports
// @Produce json
// @Param period query string false "7days, 30days, 90days, thisMonth, lastMonth or thisYear"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/events [get]
func GetEventReport(c *fiber.Ctx) error {
	report, err := repository.GetEventReport(c.Context(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to build event report"))
	}
	return c.JSON(fiber.Map{"success": true, "data": report})
}

// GetPaymentReport godoc
// @Summary Payment report
// @Description Transaction counts, revenue from successful payments and a daily revenue trend
// @Tags reports
// @Produce json
// @Param period query string false "7days, 30days, 90days, thisMonth, lastMonth or thisYear"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/payments [get]
func GetPaymentReport(c *fiber.Ctx) error {
	report, err := repository.GetPaymentReport(c.Context(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to build payment report"))
	}
	return c.JSON(fiber.Map{"success": true, "data": report})
}
