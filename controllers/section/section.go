package sectionController

import (
	"log"
	"os"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"
	"studytrack/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSection adds a section to a module, assigning the next order index
// after the current maximum
func CreateSection(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*struct {
		ModuleID uint   `json:"module_id"`
		Title    string `json:"title"`
		Order    int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if module exists
	var module models.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// Get the next order index
	orderIndex := reqData.Order
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&models.Section{}).Where("module_id = ? AND is_deleted = ?", reqData.ModuleID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	section := models.Section{
		ModuleID:   reqData.ModuleID,
		Title:      reqData.Title,
		OrderIndex: orderIndex,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// DeleteSection removes a section and cascades over every dependent row:
// progress, ratings, notes (with their attachments and stored files) and
// section-scoped resources. Module-level resources stay.
func DeleteSection(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID, ok := c.Locals("sectionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Collect note ids up front so attachment rows and files can go with them
	var noteIDs []uint
	db.Model(&models.ShortNote{}).Where("section_id = ?", sectionID).Pluck("id", &noteIDs)

	var attachments []models.NoteAttachment
	if len(noteIDs) > 0 {
		db.Where("short_note_id IN ?", noteIDs).Find(&attachments)
	}

	tx := db.Begin()

	if len(noteIDs) > 0 {
		if err := tx.Where("short_note_id IN ?", noteIDs).Delete(&models.NoteAttachment{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete note attachments!", nil)
		}
	}
	if err := tx.Where("section_id = ?", sectionID).Delete(&models.ShortNote{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notes!", nil)
	}
	if err := tx.Where("section_id = ?", sectionID).Delete(&models.SectionProgress{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete progress!", nil)
	}
	if err := tx.Where("section_id = ?", sectionID).Delete(&models.Rating{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete ratings!", nil)
	}
	if err := tx.Where("section_id = ?", sectionID).Delete(&models.Resource{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resources!", nil)
	}
	// The section row itself is flag-deleted so listings drop it
	section.IsDeleted = true
	if err := tx.Save(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	tx.Commit()

	// Stored files are removed after the rows commit; a failed unlink only
	// leaves work for the upload sweeper
	for _, att := range attachments {
		path, err := utils.ResolveStoragePath(att.FilePath)
		if err != nil {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing stored file %s: %v", att.FilePath, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// GetSection returns a section with its resources, including module-level
// fallback resources
func GetSection(c *fiber.Ctx) error {
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
	db.Where("section_id = ? OR (section_id IS NULL AND module_id = ?)", sectionID, section.ModuleID).
		Order("title asc").
		Find(&resources)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section fetched successfully!", fiber.Map{
		"section":   section,
		"resources": resources,
	})
}
