package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
)

func SetupRoutesApplication(api fiber.Router) {
	apps := api.Group("/applications")
	apps.Get("/", controllers.GetApplications)
	apps.Get("/stats", controllers.GetApplicationStats)
	apps.Post("/find-by-email", controllers.FindApplicationByEmail)
	apps.Post("/", controllers.CreateApplication)
	apps.Patch("/status/:id", controllers.UpdateApplicationStatus)
	apps.Get("/:id", controllers.GetApplication)
	apps.Delete("/:id", controllers.DeleteApplication)
}
