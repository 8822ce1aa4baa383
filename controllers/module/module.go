package moduleController

import (
	progressController "studytrack/controllers/progress"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"

	"github.com/gofiber/fiber/v2"
)

// ListModules returns all modules in display order with their section counts.
// When a session is present each module also carries the caller's aggregated
// progress.
func ListModules(c *fiber.Ctx) error {
	db := database.Database.Db

	var modules []models.Module
	if err := db.Where("is_deleted = ?", false).Order("sort_order asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	userId, authed := c.Locals("userId").(uint)

	type ModuleOverview struct {
		models.Module
		SectionsCount int64                               `json:"sections_count"`
		Progress      *progressController.ModuleAggregate `json:"progress,omitempty"`
	}

	overview := make([]ModuleOverview, len(modules))
	for i, mod := range modules {
		var count int64
		db.Model(&models.Section{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&count)
		overview[i] = ModuleOverview{Module: mod, SectionsCount: count}

		if authed {
			agg, err := AggregateForUser(userId, mod.ID)
			if err == nil {
				overview[i].Progress = &agg
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": overview,
	})
}

// GetModule returns one module with its ordered sections. When a session is
// present each section carries the caller's status (missing rows read as
// not_started).
func GetModule(c *fiber.Ctx) error {
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

	type SectionWithStatus struct {
		models.Section
		Status string `json:"status"`
	}

	userId, authed := c.Locals("userId").(uint)
	statusBySection := map[uint]string{}
	if authed && len(sections) > 0 {
		ids := make([]uint, len(sections))
		for i, s := range sections {
			ids[i] = s.ID
		}
		var rows []models.SectionProgress
		db.Where("user_id = ? AND section_id IN ?", userId, ids).Find(&rows)
		for _, row := range rows {
			statusBySection[row.SectionID] = row.Status
		}
	}

	sectionList := make([]SectionWithStatus, len(sections))
	for i, s := range sections {
		status := statusBySection[s.ID]
		if status == "" {
			status = models.StatusNotStarted
		}
		sectionList[i] = SectionWithStatus{Section: s, Status: status}
	}

	resp := fiber.Map{
		"module":   module,
		"sections": sectionList,
	}
	if authed {
		resp["progress"] = progressController.AggregateModule(sections, statusBySection)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", resp)
}

// AggregateForUser loads a module's sections and the user's progress rows and
// folds them through the aggregator
func AggregateForUser(userId uint, moduleID uint) (progressController.ModuleAggregate, error) {
	db := database.Database.Db

	var sections []models.Section
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("order_index asc").Find(&sections).Error; err != nil {
		return progressController.ModuleAggregate{}, err
	}

	statusBySection := map[uint]string{}
	if len(sections) > 0 {
		ids := make([]uint, len(sections))
		for i, s := range sections {
			ids[i] = s.ID
		}
		var rows []models.SectionProgress
		if err := db.Where("user_id = ? AND section_id IN ?", userId, ids).Find(&rows).Error; err != nil {
			return progressController.ModuleAggregate{}, err
		}
		for _, row := range rows {
			statusBySection[row.SectionID] = row.Status
		}
	}

	return progressController.AggregateModule(sections, statusBySection), nil
}
