package attachmentValidator

import (
	"strconv"
	"strings"
	"studytrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// AttachmentID validates an attachment id path parameter
func AttachmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attachmentIDStr := strings.TrimSpace(c.Params("id"))
		if attachmentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attachment ID is required!", nil)
		}

		attachmentID, err := strconv.Atoi(attachmentIDStr)
		if err != nil || attachmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Attachment ID!", nil)
		}

		c.Locals("attachmentID", attachmentID)
		return c.Next()
	}
}
