package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
	"meetspace-admin/internal/services"
)

func SetupRoutesMedia(api fiber.Router, resolver *services.MediaResolver) {
	api.Get("/media/:filename", controllers.ServeMedia(resolver))
}

func SetupRoutesReport(api fiber.Router) {
	reports := api.Group("/reports")
	reports.Get("/users", controllers.GetUserReport)
	reports.Get("/events", controllers.GetEventReport)
	reports.Get("/payments", controllers.GetPaymentReport)
}
