package attachmentController

import (
	"errors"
	"log"
	"os"
	"studytrack/config"
	"studytrack/database"
	"studytrack/middleware"
	"studytrack/models"
	"studytrack/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadFile stores a multipart upload and returns the pending attachment
// descriptor the client buffers until the owning note exists
func UploadFile(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	storageKey, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	fileType := file.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"file_name": file.Filename,
		"file_path": storageKey,
		"file_size": file.Size,
		"file_type": fileType,
	})
}

// DeleteAttachment removes one attachment row and its stored file. Only the
// owner of the owning note may delete; guest-note attachments are immutable
// like their notes.
func DeleteAttachment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	attachmentID, ok := c.Locals("attachmentID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Attachment ID!", nil)
	}

	db := database.Database.Db

	var attachment models.NoteAttachment
	if err := db.Where("id = ?", attachmentID).First(&attachment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attachment not found!", nil)
	}

	var note models.ShortNote
	if err := db.Where("id = ?", attachment.ShortNoteID).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Owning note not found!", nil)
	}
	if note.IsGuest() || *note.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the note owner can delete its attachments!", nil)
	}

	if err := db.Delete(&attachment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachment!", nil)
	}

	if path, err := utils.ResolveStoragePath(attachment.FilePath); err == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing stored file %s: %v", attachment.FilePath, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attachment deleted successfully!", nil)
}

// ServeSignedFile streams a stored file after checking the URL's signature
// and expiry. Expired links answer 410 so clients degrade to a placeholder
// instead of treating the miss as fatal.
func ServeSignedFile(c *fiber.Ctx) error {
	path := c.Query("path")
	exp := c.Query("exp")
	sig := c.Query("sig")

	if path == "" || exp == "" || sig == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing signed URL parameters!", nil)
	}

	if err := utils.VerifySignedPath(path, exp, sig); err != nil {
		if errors.Is(err, utils.ErrURLExpired) {
			return middleware.JsonResponse(c, fiber.StatusGone, false, "Signed URL has expired!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid URL signature!", nil)
	}

	diskPath, err := utils.ResolveStoragePath(path)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid URL signature!", nil)
	}
	if _, err := os.Stat(diskPath); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	return c.SendFile(diskPath)
}
