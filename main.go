package main

import (
	"studytrack/config"
	"studytrack/database"
	attachmentRoutes "studytrack/routers/attachmentRoutes"
	authRoutes "studytrack/routers/authRoutes"
	moduleRoutes "studytrack/routers/moduleRoutes"
	progressRoutes "studytrack/routers/progressRoutes"
	ratingRoutes "studytrack/routers/ratingRoutes"
	resourceRoutes "studytrack/routers/resourceRoutes"
	sectionRoutes "studytrack/routers/sectionRoutes"
	"studytrack/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	sectionRoutes.SetupSectionRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	ratingRoutes.SetupRatingRoutes(app)
	attachmentRoutes.SetupAttachmentRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)

	// Nightly cleanup of uploads that never got attached to a note
	utils.InitializeUploadScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
