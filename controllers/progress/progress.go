package progressController

import (
	"encoding/json"
	"log"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// UpdateSectionProgress upserts the caller's status for one section, keyed on
// (user, section). Last write wins.
func UpdateSectionProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		SectionID uint   `json:"section_id"`
		Status    string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", reqData.SectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Upsert by lookup on the composite key
	var progress models.SectionProgress
	if err := db.Where("user_id = ? AND section_id = ?", userId, reqData.SectionID).First(&progress).Error; err != nil {
		progress = models.SectionProgress{
			UserID:    userId,
			SectionID: reqData.SectionID,
			Status:    reqData.Status,
		}
		if err := db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	} else {
		progress.Status = reqData.Status
		if err := db.Save(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	}

	logActivity(userId, "SECTION_PROGRESS", fiber.Map{
		"section_id": reqData.SectionID,
		"module_id":  section.ModuleID,
		"status":     reqData.Status,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}

// GetSectionProgress returns the caller's status for one section; a missing
// row reads as not_started
func GetSectionProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID, ok := c.Locals("sectionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
	}

	var progress models.SectionProgress
	if err := database.Database.Db.Where("user_id = ? AND section_id = ?", userId, sectionID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
			"section_id": sectionID,
			"status":     models.StatusNotStarted,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"section_id": progress.SectionID,
		"status":     progress.Status,
	})
}

// GetModuleProgress returns the caller's aggregated status for one module
func GetModuleProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
	}

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var sections []models.Section
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("order_index asc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	agg := AggregateModule(sections, loadStatusMap(userId, sections))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module progress fetched successfully!", fiber.Map{
		"module_id": module.ID,
		"progress":  agg,
	})
}

// Dashboard returns the caller's overall picture: per-module aggregates,
// overall completion, the module currently in progress, the next untouched
// one and recent activity
func Dashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var modules []models.Module
	if err := db.Where("is_deleted = ?", false).Order("sort_order asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type ModuleStatus struct {
		ModuleID uint   `json:"module_id"`
		Title    string `json:"title"`
		ModuleAggregate
	}

	var (
		perModule        []ModuleStatus
		completedModules int
		inProgress       int
		totalSections    int
		completedTotal   int
		currentModuleID  uint
		nextModuleID     uint
	)

	for _, mod := range modules {
		var sections []models.Section
		if err := db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).Order("order_index asc").Find(&sections).Error; err != nil {
			continue
		}

		agg := AggregateModule(sections, loadStatusMap(userId, sections))
		perModule = append(perModule, ModuleStatus{ModuleID: mod.ID, Title: mod.Title, ModuleAggregate: agg})

		totalSections += agg.TotalSections
		completedTotal += agg.CompletedSections

		switch agg.Status {
		case models.StatusDone:
			completedModules++
		case models.StatusInProgress:
			inProgress++
			if currentModuleID == 0 {
				currentModuleID = mod.ID
			}
		case models.StatusNotStarted:
			if nextModuleID == 0 {
				nextModuleID = mod.ID
			}
		}
	}

	overallProgress := 0
	if totalSections > 0 {
		overallProgress = completedTotal * 100 / totalSections
	}

	// Recent activity: latest actions first
	var activity []models.ActivityLog
	db.Where("user_id = ?", userId).Order("created_at desc").Limit(5).Find(&activity)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_modules":       len(modules),
			"completed_modules":   completedModules,
			"in_progress_modules": inProgress,
			"total_sections":      totalSections,
			"completed_sections":  completedTotal,
			"overall_progress":    overallProgress,
		},
		"modules":           perModule,
		"current_module_id": currentModuleID,
		"next_module_id":    nextModuleID,
		"recent_activity":   activity,
	})
}

// loadStatusMap fetches the user's progress rows for a section set
func loadStatusMap(userId uint, sections []models.Section) map[uint]string {
	statusBySection := map[uint]string{}
	if len(sections) == 0 {
		return statusBySection
	}

	ids := make([]uint, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}

	var rows []models.SectionProgress
	database.Database.Db.Where("user_id = ? AND section_id IN ?", userId, ids).Find(&rows)
	for _, row := range rows {
		statusBySection[row.SectionID] = row.Status
	}
	return statusBySection
}

// logActivity writes a dashboard activity row; failures are logged, never
// surfaced
func logActivity(userId uint, action string, metadata fiber.Map) {
	payload, err := json.Marshal(metadata)
	if err != nil {
		log.Printf("Error encoding activity metadata: %v", err)
		return
	}

	entry := models.ActivityLog{
		UserID:   userId,
		Action:   action,
		Metadata: datatypes.JSON(payload),
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error writing activity log: %v", err)
	}
}
