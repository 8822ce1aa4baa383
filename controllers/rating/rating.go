package ratingController

import (
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"

	"github.com/gofiber/fiber/v2"
)

// UpsertRating records the caller's star rating for a section, overwriting
// any previous submission
func UpsertRating(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRating").(*struct {
		SectionID uint `json:"section_id"`
		Stars     int  `json:"stars"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if section exists
	var section models.Section
	if err := db.Where("id = ? AND is_deleted = ?", reqData.SectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Upsert by lookup on the composite key
	var rating models.Rating
	if err := db.Where("user_id = ? AND section_id = ?", userId, reqData.SectionID).First(&rating).Error; err != nil {
		rating = models.Rating{
			UserID:    userId,
			SectionID: reqData.SectionID,
			Stars:     reqData.Stars,
		}
		if err := db.Create(&rating).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save rating!", nil)
		}
	} else {
		rating.Stars = reqData.Stars
		if err := db.Save(&rating).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save rating!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating saved successfully!", rating)
}

// GetSectionRating returns the caller's rating for a section; 0 stars when
// unrated
func GetSectionRating(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID, ok := c.Locals("sectionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
	}

	var rating models.Rating
	if err := database.Database.Db.Where("user_id = ? AND section_id = ?", userId, sectionID).First(&rating).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating fetched successfully!", fiber.Map{
			"section_id": sectionID,
			"stars":      0,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating fetched successfully!", fiber.Map{
		"section_id": rating.SectionID,
		"stars":      rating.Stars,
	})
}
