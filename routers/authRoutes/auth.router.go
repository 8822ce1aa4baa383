package authRoutes

import (
	controllers "studytrack/controllers/auth"
	"studytrack/middleware"
	validators "studytrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up session and account routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/signin", validators.Signin(), controllers.Signin)
	authGroup.Post("/signout", controllers.Signout)
	authGroup.Get("/me", middleware.JWTMiddleware, controllers.Me)
}
