package progressValidator

import (
	"fmt"
	"studytrack/middleware"
	"studytrack/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress validates a section progress update
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID uint   `json:"section_id"`
			Status    string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section ID is required!"
		}
		if !models.ValidStatus(reqData.Status) {
			errors["status"] = fmt.Sprintf("Status must be one of %s, %s, %s, %s!",
				models.StatusNotStarted, models.StatusInProgress, models.StatusDone, models.StatusSkipped)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
