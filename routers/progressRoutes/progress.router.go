package progressRoutes

import (
	controllers "studytrack/controllers/progress"
	"studytrack/middleware"
	moduleValidators "studytrack/validators/module"
	validators "studytrack/validators/progress"
	sectionValidators "studytrack/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up progress tracking routes. All of them require
// a session; progress is always scoped to the acting user.
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Put("/section", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateSectionProgress)
	progressGroup.Get("/section/:id", middleware.JWTMiddleware, sectionValidators.SectionID(), controllers.GetSectionProgress)
	progressGroup.Get("/module/:id", middleware.JWTMiddleware, moduleValidators.ModuleID(), controllers.GetModuleProgress)
	progressGroup.Get("/dashboard", middleware.JWTMiddleware, controllers.Dashboard)
}
