package resourceRoutes

import (
	controllers "studytrack/controllers/resource"
	"studytrack/middleware"
	validators "studytrack/validators/resource"
	sectionValidators "studytrack/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupResourceRoutes sets up resource management routes
func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resources")

	resourceGroup.Get("/section/:id", sectionValidators.SectionID(), controllers.ListSectionResources)
	resourceGroup.Post("/", middleware.JWTMiddleware, validators.CreateResource(), controllers.CreateResource)
	resourceGroup.Delete("/:id", middleware.JWTMiddleware, validators.ResourceID(), controllers.DeleteResource)
	resourceGroup.Post("/:id/check", middleware.JWTMiddleware, validators.ResourceID(), controllers.CheckResource)
}
