// @title MeetSpace Admin API
// @version 1.0
// @description Administrative backend for the MeetSpace event platform.
// @host localhost:8000
// @BasePath /api

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"meetspace-admin/bootstrap"
	"meetspace-admin/config"
	"meetspace-admin/database"
	"meetspace-admin/internal/logx"
	"meetspace-admin/internal/routes"
	"meetspace-admin/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	logx.Setup(cfg.Environment)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(nil)

	if err := bootstrap.EnsureIndexes(database.DB); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	auth := services.NewAuthService(cfg.JWTSecret)
	media := services.NewMediaResolver(cfg.CloudinaryCloud)

	api := app.Group("/api")
	routes.SetupRoutesAuth(api, auth)
	routes.SetupRoutesUser(api)
	routes.SetupRoutesEvent(api)
	routes.SetupRoutesPayment(api)
	routes.SetupRoutesApplication(api)
	routes.SetupRoutesMedia(api, media)
	routes.SetupRoutesReport(api)
	routes.SetupRoutesSuper(api, cfg.JWTSecret)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	log.Fatal().Err(app.Listen(":" + cfg.Port)).Msg("server stopped")
}
