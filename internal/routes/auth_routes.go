package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
	"meetspace-admin/internal/services"
)

func SetupRoutesAuth(api fiber.Router, auth *services.AuthService) {
	group := api.Group("/auth")
	group.Post("/login", controllers.Login(auth))
	group.Post("/logout", controllers.Logout(auth))
	group.Post("/change-password", controllers.ChangePassword(auth))
}
