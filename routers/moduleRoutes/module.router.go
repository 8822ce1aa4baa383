package moduleRoutes

import (
	controllers "studytrack/controllers/module"
	"studytrack/middleware"
	validators "studytrack/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes sets up module browsing routes. Browsing is open;
// progress enrichment kicks in when a session is present.
func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/modules")

	moduleGroup.Get("/", middleware.OptionalJWTMiddleware, controllers.ListModules)
	moduleGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.ModuleID(), controllers.GetModule)
}
