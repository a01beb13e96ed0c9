package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"meetspace-admin/internal/services"
)

// ServeMedia godoc
// @Summary Serve application media
// @Description Resolves a stored filename through inline payloads, application records and the CDN; always returns a body, falling back to a placeholder
// @Tags media
// @Produce octet-stream
// @Param filename path string true "Stored filename or inline payload"
// @Success 200 {string} binary
// @Router /media/{filename} [get]
func ServeMedia(resolver *services.MediaResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := resolver.Resolve(c.Context(), c.Params("filename"))

		c.Set(fiber.HeaderContentType, result.ContentType)
		c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", result.CacheMaxAge))
		return c.Send(result.Body)
	}
}
