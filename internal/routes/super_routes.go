package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
	"meetspace-admin/internal/middleware"
	"meetspace-admin/internal/models"
)

// SetupRoutesSuper registers the super-admin console routes. The whole
// group requires a super-admin token.
func SetupRoutesSuper(api fiber.Router, jwtSecret string) {
	super := api.Group("/super",
		middleware.RequireJWT(jwtSecret),
		middleware.RequireRole(models.RoleSuperAdmin),
	)

	super.Get("/users", controllers.GetAdmins)
	super.Post("/users", controllers.CreateAdmin)
	super.Get("/users/:id", controllers.GetAdmin)
	super.Patch("/users/:id", controllers.UpdateAdmin)
	super.Delete("/users/:id", controllers.DeleteAdmin)

	super.Get("/admins", controllers.GetSuperAdmins)
	super.Post("/admins", controllers.CreateSuperAdmin)
	super.Get("/admins/:id", controllers.GetSuperAdmin)
	super.Patch("/admins/:id", controllers.UpdateSuperAdmin)
	super.Delete("/admins/:id", controllers.DeleteSuperAdmin)

	super.Get("/subscriptions", controllers.GetSubscriptions)
	super.Post("/subscriptions", controllers.CreateSubscription)
	super.Get("/subscriptions/:id", controllers.GetSubscription)
	super.Patch("/subscriptions/:id", controllers.UpdateSubscription)
	super.Patch("/subscriptions/:id/status", controllers.UpdateSubscriptionStatus)
	super.Delete("/subscriptions/:id", controllers.DeleteSubscription)

	super.Get("/subscription-plans", controllers.GetPlans)
	super.Post("/subscription-plans", controllers.CreatePlan)
	super.Get("/subscription-plans/:key", controllers.GetPlan)
	super.Patch("/subscription-plans/:key", controllers.UpdatePlan)
	super.Delete("/subscription-plans/:key", controllers.DeletePlan)
}
