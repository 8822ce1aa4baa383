package resourceValidator

import (
	"strconv"
	"strings"
	"studytrack/middleware"
	"studytrack/models"

	"github.com/gofiber/fiber/v2"
)

// CreateResource validates resource creation
func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID  uint   `json:"module_id"`
			SectionID *uint  `json:"section_id"`
			Title     string `json:"title"`
			URL       string `json:"url"`
			Type      string `json:"type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.URL = strings.TrimSpace(reqData.URL)
		reqData.Type = strings.TrimSpace(reqData.Type)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.URL == "" {
			errors["url"] = "URL is required!"
		}
		if reqData.Type == "" {
			reqData.Type = models.ResourceLink
		} else if !models.ValidResourceType(reqData.Type) {
			errors["type"] = "Type must be link, video, or doc!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// ResourceID validates a resource id path parameter
func ResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceIDStr := strings.TrimSpace(c.Params("id"))
		if resourceIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}

		resourceID, err := strconv.Atoi(resourceIDStr)
		if err != nil || resourceID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
		}

		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}
