package ratingRoutes

import (
	controllers "studytrack/controllers/rating"
	"studytrack/middleware"
	validators "studytrack/validators/rating"
	sectionValidators "studytrack/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupRatingRoutes sets up star rating routes
func SetupRatingRoutes(app *fiber.App) {
	ratingGroup := app.Group("/ratings")

	ratingGroup.Put("/", middleware.JWTMiddleware, validators.UpsertRating(), controllers.UpsertRating)
	ratingGroup.Get("/section/:id", middleware.JWTMiddleware, sectionValidators.SectionID(), controllers.GetSectionRating)
}
