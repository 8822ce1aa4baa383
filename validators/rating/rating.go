package ratingValidator

import (
	"studytrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpsertRating validates a star rating submission
func UpsertRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID uint `json:"section_id"`
			Stars     int  `json:"stars"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section ID is required!"
		}
		if reqData.Stars < 1 || reqData.Stars > 5 {
			errors["stars"] = "Stars must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}
