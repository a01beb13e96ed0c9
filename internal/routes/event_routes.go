package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
)

func SetupRoutesEvent(api fiber.Router) {
	events := api.Group("/events")
	events.Get("/", controllers.GetEvents)
	// Registered before :id so "stats" is not parsed as an event id.
	events.Get("/stats", controllers.GetEventStats)
	events.Post("/", controllers.CreateEvent)
	events.Get("/:id", controllers.GetEvent)
	events.Patch("/:id", controllers.UpdateEvent)
	events.Delete("/:id", controllers.DeleteEvent)
}
