package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/w3Abhishek/ytm-api/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.LandingPage)
	app.Get("/public/openapi.json", h.OpenAPISpec)
	app.Get("/api/info", h.Info)

	app.Get("/search", h.Search)
	app.Get("/lyrics/:videoId", h.Lyrics)

	// catch-all after every route
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(handlers.ErrorResponse{
			Error: "Endpoint not found. Visit / for available endpoints.",
		})
	})
}
