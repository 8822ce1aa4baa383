package resourceController

import (
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"
	"studytrack/utils"

	"github.com/gofiber/fiber/v2"
)

// ListSectionResources returns a section's resources plus the module-level
// fallback resources shared across the module
func ListSectionResources(c *fiber.Ctx) error {
	sectionID, ok := c.Locals("sectionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var resources []models.Resource
	if err := db.Where("section_id = ? OR (section_id IS NULL AND module_id = ?)", sectionID, section.ModuleID).
		Order("title asc").
		Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

// CreateResource attaches a link/video/doc reference to a section or, when
// section_id is omitted, to the whole module
func CreateResource(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		ModuleID  uint   `json:"module_id"`
		SectionID *uint  `json:"section_id"`
		Title     string `json:"title"`
		URL       string `json:"url"`
		Type      string `json:"type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.SectionID != nil {
		var section models.Section
		if err := db.Where("id = ? AND module_id = ? AND is_deleted = ?", *reqData.SectionID, reqData.ModuleID, false).First(&section).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}
	}

	resource := models.Resource{
		ModuleID:  reqData.ModuleID,
		SectionID: reqData.SectionID,
		Title:     reqData.Title,
		URL:       reqData.URL,
		Type:      reqData.Type,
	}

	if err := db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// DeleteResource removes a resource reference
func DeleteResource(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID, ok := c.Locals("resourceID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if err := db.Delete(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}

// CheckResource probes a resource's URL and reports whether it still answers
func CheckResource(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID, ok := c.Locals("resourceID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	result := utils.CheckResourceLink(resource.URL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource checked!", result)
}
