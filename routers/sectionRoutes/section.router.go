package sectionRoutes

import (
	noteControllers "studytrack/controllers/notes"
	controllers "studytrack/controllers/section"
	"studytrack/middleware"
	noteValidators "studytrack/validators/notes"
	validators "studytrack/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupSectionRoutes sets up section management and section-scoped note
// listing
func SetupSectionRoutes(app *fiber.App) {
	sectionGroup := app.Group("/sections")

	sectionGroup.Post("/", middleware.JWTMiddleware, validators.CreateSection(), controllers.CreateSection)
	sectionGroup.Delete("/", middleware.JWTMiddleware, validators.DeleteSection(), controllers.DeleteSection)
	sectionGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.SectionID(), controllers.GetSection)

	// Notes are listed per section; mutation lives under /notes
	sectionGroup.Get("/:id/notes", middleware.OptionalJWTMiddleware, validators.SectionID(), noteControllers.ListSectionNotes)

	noteGroup := app.Group("/notes")

	noteGroup.Post("/", middleware.JWTMiddleware, noteValidators.CreateNote(), noteControllers.CreateNote)
	noteGroup.Post("/:id/reply", middleware.OptionalJWTMiddleware, noteValidators.Reply(), noteControllers.ReplyNote)
	noteGroup.Put("/:id", middleware.JWTMiddleware, noteValidators.Edit(), noteControllers.EditNote)
	noteGroup.Patch("/:id/toggle", middleware.JWTMiddleware, noteValidators.NoteID(), noteControllers.ToggleNote)
	noteGroup.Delete("/:id", middleware.JWTMiddleware, noteValidators.NoteID(), noteControllers.DeleteNote)
	noteGroup.Get("/:id/embedded", middleware.OptionalJWTMiddleware, noteValidators.NoteID(), noteControllers.EmbeddedNote)
}
