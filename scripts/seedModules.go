package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
	"studytrack/config"
	"studytrack/database"
	"studytrack/models"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Curriculum.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	modulesCreated := 0
	sectionsInserted := 0
	sectionsUpdated := 0
	skipped := 0

	// Modules already resolved this run, keyed by title
	moduleCache := make(map[string]uint)

	for _, row := range records[1:] {
		moduleTitle := getField(row, headerIndex, "module")
		sectionTitle := getField(row, headerIndex, "section")

		// Skip if no module or section title
		if moduleTitle == "" || sectionTitle == "" {
			skipped++
			continue
		}

		moduleID, ok := moduleCache[moduleTitle]
		if !ok {
			var module models.Module
			result := database.Database.Db.Where("title = ?", moduleTitle).First(&module)

			if result.Error != nil {
				// Insert new module
				module = models.Module{
					Title:       moduleTitle,
					Description: getField(row, headerIndex, "description"),
					SortOrder:   parseInt(getField(row, headerIndex, "moduleOrder")),
					IsDeleted:   false,
				}
				if err := database.Database.Db.Create(&module).Error; err != nil {
					log.Printf("Error inserting module %s: %v", moduleTitle, err)
					skipped++
					continue
				}
				modulesCreated++
			}
			moduleID = module.ID
			moduleCache[moduleTitle] = moduleID
		}

		orderIndex := parseInt(getField(row, headerIndex, "sectionOrder"))

		// Check if section exists under this module
		var existing models.Section
		result := database.Database.Db.Where("module_id = ? AND title = ?", moduleID, sectionTitle).First(&existing)

		if result.Error != nil {
			// Insert new section
			section := models.Section{
				ModuleID:   moduleID,
				Title:      sectionTitle,
				OrderIndex: orderIndex,
				IsDeleted:  false,
			}
			if err := database.Database.Db.Create(&section).Error; err != nil {
				log.Printf("Error inserting section %s (module=%d): %v", sectionTitle, moduleID, err)
				continue
			}
			sectionsInserted++
		} else {
			// Update existing section
			existing.OrderIndex = orderIndex

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating section %s (module=%d): %v", sectionTitle, moduleID, err)
				continue
			}
			sectionsUpdated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Modules created: %d", modulesCreated)
	log.Printf("Sections inserted: %d", sectionsInserted)
	log.Printf("Sections updated: %d", sectionsUpdated)
	log.Printf("Skipped: %d", skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}
