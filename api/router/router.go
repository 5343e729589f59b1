package router

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/w3Abhishek/ytm-api/api/handlers"
	"github.com/w3Abhishek/ytm-api/api/router/routes"
	"github.com/w3Abhishek/ytm-api/api/services/ytmusic"
)

func SetupServer() {
	app := fiber.New()

	// server logging
	app.Use(logger.New())
	// open CORS for all origins
	app.Use(cors.New())

	client := ytmusic.NewClient(ytmusic.DefaultConfig())
	routes.SetupRoutes(app, handlers.New(client))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
