package sectionValidator

import (
	"strconv"
	"strings"
	"studytrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateSection validates section creation. module_id and title are
// required; order is optional and defaults to the next index in the module.
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID uint   `json:"module_id"`
			Title    string `json:"title"`
			Order    int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.ModuleID == 0 || reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields: module_id, title!", nil)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// DeleteSection validates section deletion by query id
func DeleteSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionIDStr := strings.TrimSpace(c.Query("id"))
		if sectionIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Section ID is required!", nil)
		}

		sectionID, err := strconv.Atoi(sectionIDStr)
		if err != nil || sectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
		}

		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

// SectionID validates a section id path parameter
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionIDStr := strings.TrimSpace(c.Params("id"))
		if sectionIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Section ID is required!", nil)
		}

		sectionID, err := strconv.Atoi(sectionIDStr)
		if err != nil || sectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
		}

		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}
