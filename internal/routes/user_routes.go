package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
)

func SetupRoutesUser(api fiber.Router) {
	users := api.Group("/users")
	users.Get("/", controllers.GetUsers)
	users.Post("/", controllers.CreateUser)
	users.Post("/check-email", controllers.CheckUserEmail)
	users.Post("/status", controllers.UserStatus)
	users.Get("/:id", controllers.GetUser)
	users.Patch("/:id", controllers.UpdateUser)
	users.Delete("/:id", controllers.DeleteUser)

	roles := api.Group("/roles")
	roles.Get("/", controllers.GetRoles)
	roles.Post("/", controllers.CreateRole)
	roles.Get("/email/:email", controllers.GetRoleByEmail)
	roles.Get("/:userId", controllers.GetRole)
	roles.Put("/:userId", controllers.UpdateRole)
	roles.Delete("/:userId", controllers.DeleteRole)
}
