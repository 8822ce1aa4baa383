package notesValidator

import (
	"strconv"
	"strings"
	notesController "studytrack/controllers/notes"
	"studytrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateNote validates root note creation
func CreateNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID   uint                                `json:"section_id"`
			Text        string                              `json:"text"`
			Attachments []notesController.PendingAttachment `json:"attachments"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section ID is required!"
		}
		if reqData.Text == "" {
			errors["text"] = "Note text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNote", reqData)
		return c.Next()
	}
}

// Reply validates reply creation. The guest-name requirement depends on the
// acting identity and is enforced in the controller.
func Reply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteIDStr := strings.TrimSpace(c.Params("id"))
		if noteIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Note ID is required!", nil)
		}

		noteID, err := strconv.Atoi(noteIDStr)
		if err != nil || noteID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
		}

		reqData := new(struct {
			Text        string                              `json:"text"`
			GuestName   string                              `json:"guest_name"`
			Attachments []notesController.PendingAttachment `json:"attachments"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)
		reqData.GuestName = strings.TrimSpace(reqData.GuestName)

		if reqData.Text == "" {
			errors["text"] = "Reply text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("noteID", noteID)
		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}

// Edit validates a note edit
func Edit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteIDStr := strings.TrimSpace(c.Params("id"))
		if noteIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Note ID is required!", nil)
		}

		noteID, err := strconv.Atoi(noteIDStr)
		if err != nil || noteID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
		}

		reqData := new(struct {
			Text string `json:"text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Text = strings.TrimSpace(reqData.Text)
		if reqData.Text == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"text": "Note text is required!",
			})
		}

		c.Locals("noteID", noteID)
		c.Locals("validatedEdit", reqData)
		return c.Next()
	}
}

// NoteID validates a note id path parameter
func NoteID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteIDStr := strings.TrimSpace(c.Params("id"))
		if noteIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Note ID is required!", nil)
		}

		noteID, err := strconv.Atoi(noteIDStr)
		if err != nil || noteID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Note ID!", nil)
		}

		c.Locals("noteID", noteID)
		return c.Next()
	}
}
