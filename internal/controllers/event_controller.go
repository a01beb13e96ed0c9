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
	"meetspace-admin/internal/utils"
)

// eventDateFields are normalized on create and update. Ticket sales
// windows are handled separately per sub-document.
var eventDateFields = []string{"date", "endDate", "registrationDeadline", "earlyBirdDeadline"}

func parseEventListQuery(c *fiber.Ctx) dto.EventListQuery {
	q := dto.EventListQuery{
		PageQuery:  dto.ParsePageQuery(c.Query("search"), c.Query("page"), c.Query("limit")),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Visibility: c.Query("visibility"),
		SkillLevel: c.Query("skillLevel"),
		IsVirtual:  c.Query("isVirtual"),
		Featured:   c.Query("featured"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Tags = append(q.Tags, tag)
			}
		}
	}
	return q
}

// GetEvents godoc
// @Summary List events
// @Description Paginated events with text search, field filters, date range and sorting
// @Tags events
// @Produce json
// @Param search query string false "Match against title, description and tags"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param isVirtual query string false "true or false"
// @Param featured query string false "true restricts to featured events"
// @Param startDate query string false "Events on or after this date"
// @Param endDate query string false "Events on or before this date"
// @Param sortBy query string false "date, title, category, status, price, attendees, createdAt"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func GetEvents(c *fiber.Ctx) error {
	q := parseEventListQuery(c)

	events, total, err := repository.ListEvents(c.Context(), q)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to fetch events"))
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       events,
		"pagination": dto.NewPagination(total, q.PageQuery),
	})
}

// GetEventStats godoc
// @Summary Event statistics
// @Description Totals, status/category breakdowns and the most attended events
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/stats [get]
func GetEventStats(c *fiber.Ctx) error {
	stats, err := repository.GetEventStats(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to compute event stats"))
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// GetEvent godoc
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func GetEvent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid event id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	event, err := repository.GetEventByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "event not found"))
	}

	return c.JSON(fiber.Map{"success": true, "data": event})
}

// CreateEvent godoc
// @Summary Create event
// @Description Date fields are normalized when parseable and stored as submitted otherwise
// @Tags events
// @Accept json
// @Produce json
// @Param event body map[string]interface{} true "Event"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [post]
func CreateEvent(c *fiber.Ctx) error {
	// Parsed into a plain document so unknown fields survive and the
	// lenient date pass can inspect raw values.
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	title, _ := doc["title"].(string)
	description, _ := doc["description"].(string)
	category, _ := doc["category"].(string)
	if title == "" || description == "" || category == "" || doc["date"] == nil {
		return apperr.Respond(c, apperr.Validation("title, description, category and date are required"))
	}

	utils.NormalizeDates(doc, eventDateFields...)
	utils.NormalizeTicketDates(doc["tickets"])

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	if doc["status"] == nil {
		doc["status"] = "Draft"
	}
	if doc["attendees"] == nil {
		doc["attendees"] = 0
	}
	delete(doc, "_id")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := repository.InsertEvent(ctx, doc)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create event"))
	}

	event, err := repository.GetEventByID(ctx, id)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "failed to create event"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Event created successfully",
		"data":    event,
	})
}

// UpdateEvent godoc
// @Summary Update event
// @Description Merge the supplied fields; date fields get the same lenient normalization as create
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [patch]
func UpdateEvent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid event id"))
	}

	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}
	delete(updates, "_id")
	delete(updates, "createdAt")
	if len(updates) == 0 {
		return apperr.Respond(c, apperr.Validation("no fields to update"))
	}

	utils.NormalizeDates(updates, eventDateFields...)
	if tickets, ok := updates["tickets"]; ok {
		utils.NormalizeTicketDates(tickets)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	event, err := repository.UpdateEvent(ctx, id, updates)
	if err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "event not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event updated successfully",
		"data":    event,
	})
}

// DeleteEvent godoc
// @Summary Delete event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func DeleteEvent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("invalid event id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := repository.DeleteEvent(ctx, id); err != nil {
		return apperr.Respond(c, apperr.Wrap(err, "event not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}
