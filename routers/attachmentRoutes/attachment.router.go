package attachmentRoutes

import (
	controllers "studytrack/controllers/attachment"
	"studytrack/middleware"
	validators "studytrack/validators/attachment"

	"github.com/gofiber/fiber/v2"
)

// SetupAttachmentRoutes sets up upload and signed file serving routes
func SetupAttachmentRoutes(app *fiber.App) {
	attachmentGroup := app.Group("/attachments")

	attachmentGroup.Post("/upload", middleware.JWTMiddleware, controllers.UploadFile)
	attachmentGroup.Delete("/:id", middleware.JWTMiddleware, validators.AttachmentID(), controllers.DeleteAttachment)

	// Signed URLs are self-authorizing; no session required
	app.Get("/files", controllers.ServeSignedFile)
}
