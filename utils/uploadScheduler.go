package utils

import (
	"log"
	"os"
	"path/filepath"
	"studytrack/config"
	"studytrack/database"
	"studytrack/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeUploadScheduler sets up the abandoned-upload sweeper
func InitializeUploadScheduler() {
	log.Println("[UPLOAD-SCHEDULER] Initializing upload scheduler...")

	c := cron.New()

	// Run daily at 3 AM to sweep uploads that were never bound to a note
	c.AddFunc("0 3 * * *", func() {
		log.Println("[UPLOAD-SCHEDULER] Running daily orphaned upload sweep...")
		SweepOrphanedUploads()
	})

	c.Start()
	log.Println("[UPLOAD-SCHEDULER] Upload scheduler started - runs daily at 3 AM")
}

// SweepOrphanedUploads deletes files in the upload directory that are older
// than a day and have no attachment row referencing them. Uploads abandoned
// mid-compose (modal closed, note insert failed) end up here.
func SweepOrphanedUploads() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	entries, err := os.ReadDir(config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("[UPLOAD-SCHEDULER] Error reading upload directory: %v", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		var count int64
		if err := db.Model(&models.NoteAttachment{}).Where("file_path = ?", entry.Name()).Count(&count).Error; err != nil {
			log.Printf("[UPLOAD-SCHEDULER] Error checking attachment rows for %s: %v", entry.Name(), err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := os.Remove(filepath.Join(config.AppConfig.UploadDir, entry.Name())); err != nil {
			log.Printf("[UPLOAD-SCHEDULER] Error removing %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	log.Printf("[UPLOAD-SCHEDULER] Sweep complete, removed %d orphaned files", removed)
}
