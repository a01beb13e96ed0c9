package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/controllers"
)

func SetupRoutesPayment(api fiber.Router) {
	payments := api.Group("/payments")
	payments.Get("/", controllers.GetPayments)
	payments.Get("/metrics", controllers.GetPaymentMetrics)
	payments.Post("/", controllers.CreatePayment)
	payments.Get("/:key", controllers.GetPayment)
	payments.Patch("/:key", controllers.UpdatePayment)
	payments.Delete("/:key", controllers.DeletePayment)
}
