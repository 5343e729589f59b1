package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/w3Abhishek/ytm-api/api/services/ytmusic"
)

// Info handles GET /api/info, a static capability description.
func (h *Handler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "YouTube Music API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"search": fiber.Map{
				"method": "GET",
				"path":   "/search",
				"params": fiber.Map{
					"q":    "Search query (required)",
					"type": "Filter type (optional). Options: " + strings.Join(ytmusic.SearchTypes, ", "),
				},
				"example": "/search?q=espresso+sabrina+carpenter&type=songs",
			},
			"lyrics": fiber.Map{
				"method": "GET",
				"path":   "/lyrics/:videoId",
				"params": fiber.Map{
					"videoId": "YouTube video ID (required)",
				},
				"example": "/lyrics/kIft-LUHHVA",
			},
		},
	})
}

// OpenAPISpec handles GET /public/openapi.json, consumed by the Swagger UI
// on the landing page.
func (h *Handler) OpenAPISpec(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"openapi": "3.0.3",
		"info": fiber.Map{
			"title":       "YouTube Music API",
			"description": "Search YouTube Music and get lyrics — clean, standardized JSON.",
			"version":     "1.0.0",
		},
		"servers": []fiber.Map{{"url": "/"}},
		"tags": []fiber.Map{
			{"name": "Search", "description": "Search YouTube Music"},
			{"name": "Lyrics", "description": "Get song lyrics"},
		},
		"paths": fiber.Map{
			"/search": fiber.Map{
				"get": fiber.Map{
					"tags":        []string{"Search"},
					"summary":     "Search YouTube Music",
					"description": "Search across songs, videos, artists, albums, podcasts, profiles and more.",
					"parameters": []fiber.Map{
						{
							"name": "q", "in": "query", "required": true,
							"description": "Search query",
							"schema":      fiber.Map{"type": "string", "example": "espresso sabrina carpenter"},
						},
						{
							"name": "type", "in": "query", "required": false,
							"description": "Filter type",
							"schema":      fiber.Map{"type": "string", "enum": ytmusic.SearchTypes, "default": "all"},
						},
					},
					"responses": fiber.Map{
						"200": fiber.Map{"description": "Search results"},
						"400": fiber.Map{"description": "Missing or invalid parameters"},
						"500": fiber.Map{"description": "Server error"},
					},
				},
			},
			"/lyrics/{videoId}": fiber.Map{
				"get": fiber.Map{
					"tags":        []string{"Lyrics"},
					"summary":     "Get song lyrics",
					"description": "Retrieve lyrics for a song using its YouTube video ID.",
					"parameters": []fiber.Map{
						{
							"name": "videoId", "in": "path", "required": true,
							"description": "YouTube video ID",
							"schema":      fiber.Map{"type": "string", "example": "kIft-LUHHVA"},
						},
					},
					"responses": fiber.Map{
						"200": fiber.Map{"description": "Lyrics found"},
						"404": fiber.Map{"description": "Lyrics not available"},
						"500": fiber.Map{"description": "Server error"},
					},
				},
			},
		},
	})
}

// LandingPage handles GET /.
func (h *Handler) LandingPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(landingPageHTML)
}
